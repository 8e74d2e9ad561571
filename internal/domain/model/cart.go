package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"uniqueIndex;not null"` // 一個用戶只有一台購物車
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	BaseModel
}

// CartItem 同一個 (cart, product) 只會有一筆，重複加入只增加數量
// Price 是加入當下的價格快照，之後商品改價不影響已存在的項目
type CartItem struct {
	CartItemID uint            `gorm:"primaryKey"`
	CartID     uint            `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID  uint            `gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity   int             `gorm:"not null;default:1"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Product    *Product        `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time       `gorm:"not null;default:now()"`
	UpdatedAt  time.Time       `gorm:"null"`
}
