package entity

import "time"

// Product is a catalog item owned by the user that created it.
type Product struct {
	ID        uint
	Name      string
	Price     float64
	Content   *string // Optional free-form description.
	OwnerID   uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
