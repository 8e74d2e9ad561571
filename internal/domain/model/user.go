package model

type User struct {
	UserID         uint    `gorm:"primaryKey"`
	UserName       string  `gorm:"not null;type:varchar(100)"`
	UserEmail      string  `gorm:"unique;not null;type:varchar(100)"`
	HashedPassword string  `gorm:"not null;type:varchar(100)"`
	Role           string  `gorm:"not null;type:varchar(20);default:customer"`
	Orders         []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
	BaseModel
}
