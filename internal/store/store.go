// Package store: üç tabloyu (products, stock_entries, sale_records) tek bir
// sqlite dosyasında tutan veritabanı katmanı. Store tutamacı main'de açılır ve
// servislere dışarıdan verilir; global bağlantı yoktur.
package store

import (
	"fmt"

	"shop-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

// Open: verilen dosya yolunda sqlite veritabanını açar ve şemayı hazırlar.
// Foreign key kontrolü sqlite'ta varsayılan kapalı olduğu için DSN ile açılıyor;
// _loc=auto tarihlerin yazıldığı saat diliminde geri okunmasını sağlar.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on&_loc=auto"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanı açılamadı: %w", err)
	}

	s := &Store{db: db}
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureSchema: tablolar yoksa oluşturur, varsa dokunmaz.
func (s *Store) EnsureSchema() error {
	err := s.db.AutoMigrate(
		&models.Product{},
		&models.StockEntry{},
		&models.SaleRecord{},
	)
	if err != nil {
		return fmt.Errorf("migration hatası: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB: tek adımlık okuma/yazmalar için bağlantı.
func (s *Store) DB() *gorm.DB { return s.db }

// WithTx: çok adımlı yazma işlemlerini tek transaction içinde çalıştırır.
// fn hata dönerse tüm adımlar geri alınır.
func (s *Store) WithTx(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}
