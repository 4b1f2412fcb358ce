package sales

import (
	"strings"
	"time"

	"shop-backend/internal/apperr"
	"shop-backend/internal/store"

	"gorm.io/gorm"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

type RecordInput struct {
	ProductName    string
	Quantity       int
	CustomerName   string
	CustomerMobile string
}

// Record: satışı kaydeder ve fişini üretir. Stok düşümü ve satış kaydı tek
// transaction içindedir; herhangi bir adım başarısız olursa ikisi de geri
// alınır. Total o anki birim fiyattan hesaplanır ve dondurulur.
func (s *Service) Record(in RecordInput) (store.SaleRow, Bill, error) {
	if strings.TrimSpace(in.ProductName) == "" {
		return store.SaleRow{}, Bill{}, apperr.New(apperr.KindValidation, "Ürün adı boş olamaz")
	}
	if in.Quantity < 1 {
		return store.SaleRow{}, Bill{}, apperr.New(apperr.KindValidation, "Satış miktarı en az 1 olmalı")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var sale store.SaleRow
	err := s.store.WithTx(func(tx *gorm.DB) error {
		product, err := store.FindProductByName(tx, strings.TrimSpace(in.ProductName))
		if err != nil {
			return err
		}

		total := product.Price * float64(in.Quantity)
		if err := store.DecrementStockForSale(tx, product.ID, in.Quantity); err != nil {
			return err
		}

		id, err := store.InsertSaleRecord(tx, product.ID, today, in.Quantity, total)
		if err != nil {
			return err
		}

		sale = store.SaleRow{
			ID:          id,
			Date:        today,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    in.Quantity,
			Total:       total,
		}
		return nil
	})
	if err != nil {
		return store.SaleRow{}, Bill{}, err
	}

	return sale, NewBill(sale, in.CustomerName, in.CustomerMobile), nil
}

// List: tüm satış kayıtları. Boş sonuç hata değildir.
func (s *Service) List() ([]store.SaleRow, error) {
	return store.QuerySales(s.store.DB())
}

// Aggregates: dashboard özeti. Hiç satış yokken toplamlar 0, TopProduct nil.
func (s *Service) Aggregates() (store.Aggregates, error) {
	return store.QueryAggregates(s.store.DB())
}
