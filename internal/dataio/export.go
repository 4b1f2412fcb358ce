package dataio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"shop-backend/internal/store"

	"github.com/xuri/excelize/v2"
)

// ExportCSV: başlık satırı + veri satırlarını UTF-8 CSV olarak üretir.
// Verilen satırlar kayıpsız yazılır, tekrar import edilebilir.
func ExportCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX: aynı tabloyu tek sayfalık Excel dosyası olarak üretir.
func ExportXLSX(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for i, val := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StockTableRows: stok satırlarını ekran tablosunun kolon sırasıyla
// (Date Added, Product, Price, Available Stock) metne çevirir.
func StockTableRows(rows []store.StockRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date.Format("2006-01-02"),
			r.ProductName,
			formatPrice(r.Price),
			strconv.Itoa(r.Quantity),
		})
	}
	return out
}

// SalesTableRows: satış satırlarını ekran tablosunun kolon sırasıyla
// (ID, Date of Sale, Product, Price, Quantity, Total) metne çevirir.
func SalesTableRows(rows []store.SaleRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Date.Format("2006-01-02"),
			r.ProductName,
			formatPrice(r.Price),
			strconv.Itoa(r.Quantity),
			formatPrice(r.Total),
		})
	}
	return out
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
