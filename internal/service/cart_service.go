package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"gorm.io/gorm"
)

type ICartService interface {
	GetCart(ctx context.Context, userID uint) (*model.Cart, error)
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, userID, productID uint) error
}

type CartService struct {
	cartRepo    *db.CartRepo
	productRepo *db.ProductRepo
}

func NewCartService(cartRepo *db.CartRepo, productRepo *db.ProductRepo) ICartService {
	if cartRepo == nil || productRepo == nil {
		panic("cart service dependencies cannot be nil")
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart 查詢用戶購物車，尚未建立時回傳空購物車
func (s *CartService) GetCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.GetCartWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem 加入商品到購物車
// 同商品重複加入只累加數量，價格快照維持第一次加入時的值
// 加入時不檢查庫存，庫存只在下單時才是準的
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetCartItem(ctx, cart.CartID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 第一次加入，以目前售價建立價格快照
		item = &model.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		}
		if err := s.cartRepo.CreateCartItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	}

	item.Quantity += quantity
	if err := s.cartRepo.UpdateCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 從購物車移除商品
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}

	item, err := s.cartRepo.GetCartItem(ctx, cart.CartID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	return s.cartRepo.DeleteCartItem(ctx, item.CartItemID)
}
