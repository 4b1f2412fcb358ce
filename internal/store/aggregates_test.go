package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAggregates_NoSales(t *testing.T) {
	s := openTestStore(t)

	agg, err := QueryAggregates(s.DB())
	require.NoError(t, err)

	assert.Equal(t, 0.0, agg.TotalSalesAmount)
	assert.Equal(t, int64(0), agg.SaleCount)
	assert.Nil(t, agg.TopProduct)
	assert.Empty(t, agg.SalesByDate)
	assert.Empty(t, agg.SalesByProduct)
}

func TestQueryAggregates_WithSales(t *testing.T) {
	s := openTestStore(t)

	elmaID, err := UpsertProduct(s.DB(), "Elma", 10)
	require.NoError(t, err)
	muzID, err := UpsertProduct(s.DB(), "Muz", 20)
	require.NoError(t, err)

	// Elma: toplam 5 adet / 50, Muz: toplam 3 adet / 60
	_, err = InsertSaleRecord(s.DB(), elmaID, testDate(2026, 1, 5), 2, 20)
	require.NoError(t, err)
	_, err = InsertSaleRecord(s.DB(), elmaID, testDate(2026, 1, 7), 3, 30)
	require.NoError(t, err)
	_, err = InsertSaleRecord(s.DB(), muzID, testDate(2026, 1, 5), 3, 60)
	require.NoError(t, err)

	agg, err := QueryAggregates(s.DB())
	require.NoError(t, err)

	assert.InDelta(t, 110.0, agg.TotalSalesAmount, 0.001)
	assert.Equal(t, int64(3), agg.SaleCount)

	// en çok satılan adede göre seçilir (Elma 5 > Muz 3), ciroya göre değil
	require.NotNil(t, agg.TopProduct)
	assert.Equal(t, "Elma", agg.TopProduct.Name)
	assert.Equal(t, 5, agg.TopProduct.QuantitySold)

	require.Len(t, agg.SalesByDate, 2)
	assert.Equal(t, "2026-01-05", agg.SalesByDate[0].Date.Format("2006-01-02"))
	assert.InDelta(t, 80.0, agg.SalesByDate[0].Amount, 0.001)
	assert.Equal(t, "2026-01-07", agg.SalesByDate[1].Date.Format("2006-01-02"))
	assert.InDelta(t, 30.0, agg.SalesByDate[1].Amount, 0.001)

	require.Len(t, agg.SalesByProduct, 2)
	assert.Equal(t, "Elma", agg.SalesByProduct[0].ProductName)
	assert.InDelta(t, 50.0, agg.SalesByProduct[0].Amount, 0.001)
	assert.Equal(t, "Muz", agg.SalesByProduct[1].ProductName)
	assert.InDelta(t, 60.0, agg.SalesByProduct[1].Amount, 0.001)
}
