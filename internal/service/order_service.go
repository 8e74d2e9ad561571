package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderEventPublisher 訂單完成後發送事件，失敗只記log不影響下單結果
type OrderEventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order *model.Order) error
}

type OrderHistoryPage struct {
	Orders     []model.Order
	Total      int64
	Page       int
	TotalPages int
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, userID uint) (*model.Order, error)
	GetOrderHistory(ctx context.Context, userID uint, page, limit int) (*OrderHistoryPage, error)
}

type OrderService struct {
	dbDao       *db.DbDao
	cartRepo    *db.CartRepo
	productRepo *db.ProductRepo
	orderRepo   *db.OrderRepo
	publisher   OrderEventPublisher // 可為nil
}

func NewOrderService(dbDao *db.DbDao, cartRepo *db.CartRepo, productRepo *db.ProductRepo, orderRepo *db.OrderRepo, publisher OrderEventPublisher) IOrderService {
	if dbDao == nil || cartRepo == nil || productRepo == nil || orderRepo == nil {
		panic("order service dependencies cannot be nil")
	}
	return &OrderService{
		dbDao:       dbDao,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// PlaceOrder 將用戶購物車轉為訂單，單一交易內完成:
//  1. 建立 pending 訂單
//  2. 依購物車項目建立順序逐一鎖定商品(SELECT ... FOR UPDATE)、檢查並扣減庫存
//  3. 以購物車項目的價格快照建立訂單項目並累計總額
//  4. 訂單轉為 completed、清空購物車項目
//
// 任一步失敗整筆回滾，不會留下部分扣庫存或 pending 訂單
// 固定的取鎖順序讓多商品交易之間不會互相死鎖
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint) (*model.Order, error) {
	cart, err := s.cartRepo.GetCartWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var orderID uint
	err = s.dbDao.Transaction(func(tx *gorm.DB) error {
		order := &model.Order{
			UserID: userID,
			Status: model.OrderStatusPending,
			Total:  decimal.Zero,
		}
		if err := s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
			return err
		}

		total := decimal.Zero
		for _, item := range cart.Items {
			// 鎖住商品row直到交易結束，與其他下單/庫存調整互斥
			product, err := s.productRepo.GetProductForUpdate(ctx, tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductGone
				}
				return err
			}

			if product.Stock < item.Quantity {
				return &InsufficientStockError{ProductID: product.ProductID}
			}

			if err := s.productRepo.DecrementStock(ctx, tx, product.ProductID, item.Quantity); err != nil {
				return err
			}

			// 訂單記錄的是加入購物車當下的價格快照，不是目前的商品售價
			if err := s.orderRepo.CreateOrderItem(ctx, tx, &model.OrderItem{
				OrderID:   order.OrderID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}); err != nil {
				return err
			}

			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order.Total = total
		order.Status = model.OrderStatusCompleted
		if err := s.orderRepo.UpdateOrder(ctx, tx, order); err != nil {
			return err
		}

		// 清空購物車項目，購物車本身保留
		if err := s.cartRepo.DeleteAllItems(ctx, tx, cart.CartID); err != nil {
			return err
		}

		orderID = order.OrderID
		return nil
	})
	if err != nil {
		return nil, err
	}

	placed, err := s.orderRepo.GetOrderWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCompleted(ctx, placed); err != nil {
			log.Error().Err(err).Uint("order_id", placed.OrderID).Msg("failed to publish order completed event")
		}
	}

	return placed, nil
}

// GetOrderHistory 分頁查詢用戶歷史訂單，新到舊
func (s *OrderService) GetOrderHistory(ctx context.Context, userID uint, page, limit int) (*OrderHistoryPage, error) {
	if page < 1 {
		page = constants.DefaultPaging
	}
	if limit < 1 || limit > constants.MaxPagingSize {
		limit = constants.DefaultPagingSize
	}

	orders, total, err := s.orderRepo.GetOrdersByUserIDPaginated(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &OrderHistoryPage{
		Orders:     orders,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
