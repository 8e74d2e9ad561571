package service

import (
	"errors"
	"fmt"
)

// 客戶端可回報的業務錯誤，handler 層對應 4xx
// 其餘未列出的錯誤一律視為內部錯誤(5xx)並回滾交易
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCartNotFound       = errors.New("cart not found")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductGone        = errors.New("product not found while placing order")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InsufficientStockError 庫存不足，帶出是哪個商品不足
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}
