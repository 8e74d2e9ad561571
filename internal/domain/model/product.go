package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null;type:varchar(100)"`
	Description string          `gorm:"not null;type:text"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)"`
	Stock       int             `gorm:"not null;type:int;check:stock >= 0"`
	CategoryID  *uint           `gorm:"index"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
	ImageURL    string          `gorm:"type:varchar(255)"`
	BaseModel
}
