package dataio

import (
	"bytes"
	"testing"
	"time"

	"shop-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleStockRows() []store.StockRow {
	return []store.StockRow{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), ProductName: "Elma", Price: 12.5, Quantity: 10},
		{Date: time.Date(2026, 1, 6, 0, 0, 0, 0, time.Local), ProductName: "Muz", Price: 8, Quantity: 6},
	}
}

func TestExportCSV(t *testing.T) {
	header := []string{"Date Added", "Product", "Price", "Available Stock"}

	data, err := ExportCSV(header, StockTableRows(sampleStockRows()))
	require.NoError(t, err)

	want := "Date Added,Product,Price,Available Stock\n" +
		"2026-01-05,Elma,12.50,10\n" +
		"2026-01-06,Muz,8.00,6\n"
	assert.Equal(t, want, string(data))
}

func TestExportCSV_QuotesCommaInName(t *testing.T) {
	rows := []store.StockRow{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), ProductName: "Elma, Kırmızı", Price: 12.5, Quantity: 10},
	}

	data, err := ExportCSV([]string{"Date Added", "Product", "Price", "Available Stock"}, StockTableRows(rows))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Elma, Kırmızı"`)
}

func TestExportXLSX(t *testing.T) {
	header := []string{"Date Added", "Product", "Price", "Available Stock"}

	data, err := ExportXLSX("Stock", header, StockTableRows(sampleStockRows()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Stock")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"2026-01-05", "Elma", "12.50", "10"}, rows[1])
	assert.Equal(t, []string{"2026-01-06", "Muz", "8.00", "6"}, rows[2])
}

func TestSalesTableRows(t *testing.T) {
	rows := []store.SaleRow{
		{ID: 7, Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), ProductName: "Elma", Price: 12.5, Quantity: 2, Total: 25},
	}

	out := SalesTableRows(rows)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"7", "2026-01-05", "Elma", "12.50", "2", "25.00"}, out[0])
}
