package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// GetCartByUserID - 查詢用戶購物車(不含項目)
func (r *CartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartWithItems - 查詢用戶購物車含項目與商品資訊
// 項目依建立順序排序，下單時依此順序取鎖
func (r *CartRepo) GetCartWithItems(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.cart_item_id ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateCart - 購物車在第一次加入商品時才建立
func (r *CartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartItem - 查詢購物車內指定商品的項目
func (r *CartRepo) GetCartItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateCartItem - 新增購物車項目
func (r *CartRepo) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateCartItem - 更新購物車項目
func (r *CartRepo) UpdateCartItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteCartItem - 刪除購物車項目
func (r *CartRepo) DeleteCartItem(ctx context.Context, cartItemID uint) error {
	return r.db.WithContext(ctx).Delete(&model.CartItem{}, cartItemID).Error
}

// DeleteAllItems 在呼叫端交易內清空購物車，購物車本身保留
func (r *CartRepo) DeleteAllItems(ctx context.Context, tx *gorm.DB, cartID uint) error {
	return tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
