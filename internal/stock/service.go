package stock

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

// List: stok tablosunu döner. Boş sonuç hata değildir.
func (s *Service) List(f store.StockFilter) ([]store.StockRow, error) {
	return store.QueryStock(s.store.DB(), f)
}

// AddNewItem: yeni stok kalemi ekler. Ürün adı zaten varsa mevcut ürün
// kullanılır (fiyatı değişmez), her durumda bugünün tarihiyle yeni bir stok
// girişi yazılır. Geçersiz girdide hiçbir yazma yapılmaz.
func (s *Service) AddNewItem(name string, price float64, quantity int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.New(apperr.KindValidation, "Ürün adı boş olamaz")
	}
	if price <= 0 {
		return apperr.New(apperr.KindValidation, "Fiyat 0'dan büyük olmalı")
	}
	if quantity <= 0 {
		return apperr.New(apperr.KindValidation, "Miktar 0'dan büyük olmalı")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return s.store.WithTx(func(tx *gorm.DB) error {
		productID, err := store.UpsertProduct(tx, name, price)
		if err != nil {
			return err
		}
		return store.InsertStockEntry(tx, productID, today, quantity)
	})
}

// UpdateExistingItem: mevcut ürünün fiyatını koşulsuz üzerine yazar ve en son
// stok kaydına ek miktarı işler. Ek miktar 0 olabilir (yalnız fiyat değişir).
func (s *Service) UpdateExistingItem(name string, newPrice float64, additionalQuantity int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.New(apperr.KindValidation, "Ürün adı boş olamaz")
	}
	if additionalQuantity < 0 {
		return apperr.New(apperr.KindValidation, "Eklenecek miktar negatif olamaz")
	}

	return s.store.WithTx(func(tx *gorm.DB) error {
		productID, err := store.FindProductIDByName(tx, name)
		if err != nil {
			return err
		}
		if err := store.UpdateProductPrice(tx, productID, newPrice); err != nil {
			return err
		}
		if additionalQuantity == 0 {
			return nil
		}
		return store.IncrementStockQuantity(tx, productID, additionalQuantity)
	})
}

// CurrentStock: geçmişten hesaplanan gerçek bakiye (girişler - satışlar).
func (s *Service) CurrentStock() ([]store.Balance, error) {
	return store.CurrentBalances(s.store.DB())
}

// ProductNames: form seçim kutuları için ürün adları.
func (s *Service) ProductNames() ([]string, error) {
	return store.ListProductNames(s.store.DB())
}
