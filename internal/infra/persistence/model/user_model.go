// Package model contains the GORM persistence models. They mirror table
// layout and stay separate from the pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. Password and salt are the hex-encoded
// credential material; they never cross the delivery boundary.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Password  string `gorm:"type:char(128);not null"`
	Salt      string `gorm:"type:char(32);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []ProductModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
