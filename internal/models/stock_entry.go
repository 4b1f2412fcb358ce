package models

import "time"

// StockEntry: Stok giriş kaydı. Ayrı bir bakiye tutulmaz; listede görünen
// "mevcut stok" en son kaydın quantity kolonudur, satışlar bu kolondan düşer.
type StockEntry struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	DateAdded time.Time `gorm:"index;not null"` // giriş tarihi (gün bazlı)
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
