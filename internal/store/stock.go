package store

import (
	"time"

	"shop-backend/internal/models"

	"gorm.io/gorm"
)

type StockFilter struct {
	Search string     // ürün adında geçen metin
	From   *time.Time // dahil
	To     *time.Time // dahil
}

type StockRow struct {
	Date        time.Time
	ProductName string
	Price       float64
	Quantity    int
}

func InsertStockEntry(db *gorm.DB, productID uint, date time.Time, quantity int) error {
	entry := models.StockEntry{
		ProductID: productID,
		DateAdded: date,
		Quantity:  quantity,
	}
	return db.Create(&entry).Error
}

// IncrementStockQuantity: ürünün en son stok kaydına delta ekler.
func IncrementStockQuantity(db *gorm.DB, productID uint, delta int) error {
	return db.Exec(`UPDATE stock_entries SET quantity = quantity + ?
		WHERE id = (SELECT id FROM stock_entries
		            WHERE product_id = ?
		            ORDER BY date_added DESC, id DESC LIMIT 1)`,
		delta, productID).Error
}

// DecrementStockForSale: satılan miktarı en son stok kaydından düşer.
// Sıfırın altına inmesine izin verilir; stok kaydı hiç yoksa sessizce geçilir.
func DecrementStockForSale(db *gorm.DB, productID uint, quantity int) error {
	return db.Exec(`UPDATE stock_entries SET quantity = quantity - ?
		WHERE id = (SELECT id FROM stock_entries
		            WHERE product_id = ?
		            ORDER BY date_added DESC, id DESC LIMIT 1)`,
		quantity, productID).Error
}

// QueryStock: stok kayıtlarını ürün bilgisiyle birlikte listeler.
func QueryStock(db *gorm.DB, f StockFilter) ([]StockRow, error) {
	q := db.Table("stock_entries s").
		Select("s.date_added AS date, p.name AS product_name, p.price, s.quantity").
		Joins("JOIN products p ON p.id = s.product_id")

	if f.Search != "" {
		q = q.Where("p.name LIKE ?", "%"+f.Search+"%")
	}
	if f.From != nil {
		q = q.Where("s.date_added >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("s.date_added <= ?", *f.To)
	}

	var rows []StockRow
	if err := q.Order("s.date_added, s.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type Balance struct {
	ProductName string `json:"product_name"`
	Added       int    `json:"added"`
	Sold        int    `json:"sold"`
	Quantity    int    `json:"quantity"` // Added - Sold
}

// CurrentBalances: ürün başına gerçek bakiyeyi hesaplar
// (toplam stok girişi - toplam satış). Stok listesindeki anlık quantity
// kolonundan bağımsız, geçmişten türetilen görünümdür.
func CurrentBalances(db *gorm.DB) ([]Balance, error) {
	var rows []Balance
	err := db.Table("products p").
		Select(`p.name AS product_name,
			COALESCE((SELECT SUM(quantity) FROM stock_entries WHERE product_id = p.id), 0) AS added,
			COALESCE((SELECT SUM(quantity) FROM sale_records WHERE product_id = p.id), 0) AS sold`).
		Order("p.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Quantity = rows[i].Added - rows[i].Sold
	}
	return rows, nil
}
