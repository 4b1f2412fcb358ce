package store

import (
	"time"

	"gorm.io/gorm"
)

type TopProduct struct {
	Name         string
	QuantitySold int
}

type DatePoint struct {
	Date   time.Time
	Amount float64
}

type ProductSlice struct {
	ProductName string
	Amount      float64
}

type Aggregates struct {
	TotalSalesAmount float64
	SaleCount        int64
	TopProduct       *TopProduct // hiç satış yoksa nil
	SalesByDate      []DatePoint
	SalesByProduct   []ProductSlice
}

// QueryAggregates: dashboard'un kullandığı özet görünüm. Hiç satış yokken
// toplamlar 0 döner; boş tabloda SUM'ın NULL dönmesi COALESCE ile karşılanır.
func QueryAggregates(db *gorm.DB) (Aggregates, error) {
	var agg Aggregates

	var totals struct {
		Total float64
		Count int64
	}
	err := db.Table("sale_records").
		Select("COALESCE(SUM(total), 0) AS total, COUNT(*) AS count").
		Scan(&totals).Error
	if err != nil {
		return Aggregates{}, err
	}
	agg.TotalSalesAmount = totals.Total
	agg.SaleCount = totals.Count

	// en çok satılan ürün (adede göre)
	var top struct {
		Name         string
		QuantitySold int
	}
	res := db.Table("sale_records s").
		Select("p.name AS name, SUM(s.quantity) AS quantity_sold").
		Joins("JOIN products p ON p.id = s.product_id").
		Group("p.name").
		Order("quantity_sold DESC").
		Limit(1).
		Scan(&top)
	if res.Error != nil {
		return Aggregates{}, res.Error
	}
	if res.RowsAffected > 0 {
		agg.TopProduct = &TopProduct{Name: top.Name, QuantitySold: top.QuantitySold}
	}

	// zaman serisi (çizgi grafik)
	err = db.Table("sale_records").
		Select("date_of_sale AS date, SUM(total) AS amount").
		Group("date_of_sale").
		Order("date_of_sale").
		Scan(&agg.SalesByDate).Error
	if err != nil {
		return Aggregates{}, err
	}

	// ürün bazlı dağılım (halka grafik)
	err = db.Table("sale_records s").
		Select("p.name AS product_name, SUM(s.total) AS amount").
		Joins("JOIN products p ON p.id = s.product_id").
		Group("p.name").
		Order("p.name").
		Scan(&agg.SalesByProduct).Error
	if err != nil {
		return Aggregates{}, err
	}

	return agg, nil
}
