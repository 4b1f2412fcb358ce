package store

import (
	"time"

	"shop-backend/internal/models"

	"gorm.io/gorm"
)

type SaleRow struct {
	ID          uint
	Date        time.Time
	ProductName string
	Price       float64
	Quantity    int
	Total       float64
}

func InsertSaleRecord(db *gorm.DB, productID uint, date time.Time, quantity int, total float64) (uint, error) {
	rec := models.SaleRecord{
		ProductID:  productID,
		DateOfSale: date,
		Quantity:   quantity,
		Total:      total,
	}
	if err := db.Create(&rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// QuerySales: tüm satışları ürün bilgisiyle birlikte listeler.
func QuerySales(db *gorm.DB) ([]SaleRow, error) {
	var rows []SaleRow
	err := db.Table("sale_records s").
		Select("s.id, s.date_of_sale AS date, p.name AS product_name, p.price, s.quantity, s.total").
		Joins("JOIN products p ON p.id = s.product_id").
		Order("s.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
