package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// pending 只存在於下單交易內部，交易失敗整筆回滾，不會留下 pending 訂單
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

type Order struct {
	OrderID uint            `gorm:"primaryKey"`
	UserID  uint            `gorm:"not null;index"` // 外鍵，關聯到 User
	Status  OrderStatus     `gorm:"not null;type:varchar(20);default:pending"`
	Total   decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0"`
	Items   []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}

// OrderItem 成立訂單時從購物車項目複製，Price 為歷史成交價，建立後不再變動
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;index"`
	ProductID   uint            `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Product     *Product        `gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time       `gorm:"not null;default:now()"`
}
