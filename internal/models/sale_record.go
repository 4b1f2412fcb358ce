package models

import "time"

// SaleRecord: Satış kaydı. Total satış anındaki birim fiyattan hesaplanır ve
// ürün fiyatı sonradan değişse bile güncellenmez.
type SaleRecord struct {
	ID         uint `gorm:"primaryKey"`
	ProductID  uint `gorm:"index;not null"`
	Product    Product
	DateOfSale time.Time `gorm:"index;not null"` // satış tarihi (gün bazlı)
	Quantity   int       `gorm:"not null"`
	Total      float64   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
