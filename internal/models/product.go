package models

import "time"

type Product struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null;unique"`
	Price     float64 `gorm:"not null"` // birim satış fiyatı
	CreatedAt time.Time
	UpdatedAt time.Time
}
