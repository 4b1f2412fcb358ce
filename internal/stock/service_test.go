package stock

import (
	"path/filepath"
	"testing"
	"time"

	"shop-backend/internal/apperr"
	"shop-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st)
}

func requireKind(t *testing.T, err error, want apperr.Kind) {
	t.Helper()

	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok, "beklenen hata türü yok: %v", err)
	assert.Equal(t, want, kind)
}

func TestAddNewItem_ThenList(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))

	rows, err := svc.List(store.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Elma", rows[0].ProductName)
	assert.Equal(t, 12.5, rows[0].Price)
	assert.Equal(t, 10, rows[0].Quantity)
	assert.Equal(t, time.Now().Format("2006-01-02"), rows[0].Date.Format("2006-01-02"))
}

func TestAddNewItem_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		product  string
		price    float64
		quantity int
	}{
		{"boş isim", "", 10, 5},
		{"boşluktan ibaret isim", "   ", 10, 5},
		{"sıfır fiyat", "Elma", 0, 5},
		{"negatif fiyat", "Elma", -1, 5},
		{"sıfır miktar", "Elma", 10, 0},
		{"negatif miktar", "Elma", 10, -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireKind(t, svc.AddNewItem(tc.product, tc.price, tc.quantity), apperr.KindValidation)
		})
	}

	// hiçbiri yazmamış olmalı
	rows, err := svc.List(store.StockFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddNewItem_ExistingNameReusesProduct(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))
	// aynı isim hata değildir: mevcut ürün kullanılır, fiyatı değişmez
	require.NoError(t, svc.AddNewItem("Elma", 99.9, 5))

	rows, err := svc.List(store.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 12.5, rows[0].Price)
	assert.Equal(t, 12.5, rows[1].Price)

	names, err := svc.ProductNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Elma"}, names)
}

func TestUpdateExistingItem_PriceOnly(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))

	// ek miktar 0: yalnız fiyat değişir
	require.NoError(t, svc.UpdateExistingItem("Elma", 7.5, 0))

	rows, err := svc.List(store.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7.5, rows[0].Price)
	assert.Equal(t, 10, rows[0].Quantity)
}

func TestUpdateExistingItem_AddQuantity(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))
	require.NoError(t, svc.UpdateExistingItem("Elma", 12.5, 4))

	rows, err := svc.List(store.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 14, rows[0].Quantity)
}

func TestUpdateExistingItem_UnknownProduct(t *testing.T) {
	svc := newTestService(t)

	requireKind(t, svc.UpdateExistingItem("Yok", 10, 1), apperr.KindNotFound)
}

func TestUpdateExistingItem_NegativeDelta(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))
	requireKind(t, svc.UpdateExistingItem("Elma", 12.5, -1), apperr.KindValidation)
}

func TestCurrentStock(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AddNewItem("Elma", 12.5, 10))
	require.NoError(t, svc.AddNewItem("Elma", 12.5, 5))

	balances, err := svc.CurrentStock()
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 15, balances[0].Quantity)
}
