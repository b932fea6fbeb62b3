package model

import "time"

// ProductModel mirrors the 'products' table. OwnerID references users.id.
type ProductModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Price     float64 `gorm:"not null"`
	Content   *string `gorm:"type:text"`
	OwnerID   uint    `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
