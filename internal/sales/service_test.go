package sales

import (
	"path/filepath"
	"testing"
	"time"

	"shop-backend/internal/apperr"
	"shop-backend/internal/stock"
	"shop-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*Service, *stock.Service) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st), stock.NewService(st)
}

func requireKind(t *testing.T, err error, want apperr.Kind) {
	t.Helper()

	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok, "beklenen hata türü yok: %v", err)
	assert.Equal(t, want, kind)
}

func TestRecord_TotalAndStockDecrement(t *testing.T) {
	svc, stockSvc := newTestServices(t)

	require.NoError(t, stockSvc.AddNewItem("Widget", 9.99, 10))

	sale, bill, err := svc.Record(RecordInput{
		ProductName:    "Widget",
		Quantity:       3,
		CustomerName:   "Ayşe Yılmaz",
		CustomerMobile: "5551234567",
	})
	require.NoError(t, err)

	assert.Equal(t, "Widget", sale.ProductName)
	assert.Equal(t, 3, sale.Quantity)
	assert.InDelta(t, 29.97, sale.Total, 0.001)
	assert.Equal(t, time.Now().Format("2006-01-02"), sale.Date.Format("2006-01-02"))

	assert.NotEmpty(t, bill.Reference)
	assert.Equal(t, "Ayşe Yılmaz", bill.CustomerName)
	assert.InDelta(t, 29.97, bill.Total, 0.001)

	// kayıtlı stok 3 azalmış olmalı
	rows, err := stockSvc.List(store.StockFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Quantity)
}

func TestRecord_TotalFrozenAfterPriceChange(t *testing.T) {
	svc, stockSvc := newTestServices(t)

	require.NoError(t, stockSvc.AddNewItem("Widget", 10, 10))

	sale, _, err := svc.Record(RecordInput{ProductName: "Widget", Quantity: 2})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, sale.Total, 0.001)

	// fiyat değişse bile eski satışın totali sabit kalır
	require.NoError(t, stockSvc.UpdateExistingItem("Widget", 50, 0))

	sales, err := svc.List()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.InDelta(t, 20.0, sales[0].Total, 0.001)
}

func TestRecord_Validation(t *testing.T) {
	svc, stockSvc := newTestServices(t)

	require.NoError(t, stockSvc.AddNewItem("Widget", 10, 10))

	requireKind(t, firstErr(svc.Record(RecordInput{ProductName: "", Quantity: 1})), apperr.KindValidation)
	requireKind(t, firstErr(svc.Record(RecordInput{ProductName: "Widget", Quantity: 0})), apperr.KindValidation)
	requireKind(t, firstErr(svc.Record(RecordInput{ProductName: "Widget", Quantity: -2})), apperr.KindValidation)

	// geçersiz denemeler satış yazmamış olmalı
	sales, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRecord_UnknownProduct(t *testing.T) {
	svc, _ := newTestServices(t)

	requireKind(t, firstErr(svc.Record(RecordInput{ProductName: "Yok", Quantity: 1})), apperr.KindNotFound)
}

func TestList_Empty(t *testing.T) {
	svc, _ := newTestServices(t)

	sales, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestAggregates_ZeroSales(t *testing.T) {
	svc, _ := newTestServices(t)

	agg, err := svc.Aggregates()
	require.NoError(t, err)
	assert.Equal(t, 0.0, agg.TotalSalesAmount)
	assert.Equal(t, int64(0), agg.SaleCount)
	assert.Nil(t, agg.TopProduct)
}

func firstErr(_ store.SaleRow, _ Bill, err error) error { return err }
