package store

import (
	"errors"

	"shop-backend/internal/apperr"
	"shop-backend/internal/models"

	"gorm.io/gorm"
)

// UpsertProduct: isim mevcutsa var olan kaydın id'sini döner (fiyat bu yoldan
// güncellenmez), yoksa yeni ürün ekler.
func UpsertProduct(db *gorm.DB, name string, price float64) (uint, error) {
	var p models.Product
	err := db.Where("name = ?", name).First(&p).Error
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	p = models.Product{Name: name, Price: price}
	if err := db.Create(&p).Error; err != nil {
		return 0, apperr.Wrap(apperr.KindConstraint, "Ürün kaydedilemedi", err)
	}
	return p.ID, nil
}

func FindProductByName(db *gorm.DB, name string) (models.Product, error) {
	var p models.Product
	err := db.Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apperr.New(apperr.KindNotFound, "Ürün bulunamadı: %s", name)
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func FindProductIDByName(db *gorm.DB, name string) (uint, error) {
	p, err := FindProductByName(db, name)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdateProductPrice: fiyatı koşulsuz üzerine yazar.
func UpdateProductPrice(db *gorm.DB, productID uint, price float64) error {
	return db.Model(&models.Product{}).Where("id = ?", productID).
		Update("price", price).Error
}

func ListProductNames(db *gorm.DB) ([]string, error) {
	var names []string
	err := db.Model(&models.Product{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
