package model

type Category struct {
	CategoryID  uint      `gorm:"primaryKey"`
	Name        string    `gorm:"not null;type:varchar(100)"`
	Description string    `gorm:"type:text"`
	Products    []Product `gorm:"foreignKey:CategoryID"`
	BaseModel
}
