package dto

import "github.com/shopspring/decimal"

type AddToCartDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type RemoveFromCartDTO struct {
	ProductID uint `json:"product_id"`
}

type CartItemDTO struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // 加入當下的價格快照
	Product   *ProductDTO     `json:"product,omitempty"`
}

type CartDTO struct {
	Items []CartItemDTO `json:"items"`
}
