// Package dataio: tablo verisinin dosyadan içeri alınması ve dosyaya
// dışarı verilmesi. Import edilen CSV'nin hangi tabloya ait olduğu başlık
// kümesinden belirlenir; tanınmayan başlıkta hiçbir yazma yapılmaz.
package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"shop-backend/internal/apperr"
	"shop-backend/internal/store"

	"gorm.io/gorm"
)

type ImportKind int

const (
	ImportUnknown ImportKind = iota
	ImportStock
	ImportSales
)

func (k ImportKind) String() string {
	switch k {
	case ImportStock:
		return "stock"
	case ImportSales:
		return "sales"
	default:
		return "unknown"
	}
}

var (
	stockColumns = []string{"date_added", "product_name", "price", "quantity"}
	salesColumns = []string{"date_of_sale", "product_name", "price", "quantity", "total"}
)

// DetectKind: başlık kümesini tanınan iki formatla karşılaştırır.
// Sıra önemsizdir, kolon adları küçük harfe çevrilip kırpılır.
func DetectKind(header []string) ImportKind {
	normalized := make([]string, 0, len(header))
	for _, col := range header {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(col)))
	}
	sort.Strings(normalized)

	if equalColumns(normalized, stockColumns) {
		return ImportStock
	}
	if equalColumns(normalized, salesColumns) {
		return ImportSales
	}
	return ImportUnknown
}

func equalColumns(sortedHeader, expected []string) bool {
	if len(sortedHeader) != len(expected) {
		return false
	}
	want := append([]string(nil), expected...)
	sort.Strings(want)
	for i := range want {
		if sortedHeader[i] != want[i] {
			return false
		}
	}
	return true
}

type stockImportRow struct {
	date     time.Time
	name     string
	price    float64
	quantity int
}

type salesImportRow struct {
	date     time.Time
	name     string
	price    float64
	quantity int
	total    float64 // dosyadaki değer olduğu gibi alınır, yeniden hesaplanmaz
}

type Importer struct {
	store *store.Store
}

func NewImporter(st *store.Store) *Importer {
	return &Importer{store: st}
}

type ImportResult struct {
	Kind ImportKind
	Rows int
}

// ImportCSV: dosyayı okur, başlığa göre formatı seçer ve tüm satırları tek
// transaction içinde uygular. Herhangi bir satır bozuksa hiçbir yazma kalmaz.
func (im *Importer) ImportCSV(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, apperr.Wrap(apperr.KindFormatMismatch, "CSV dosyası okunamadı", err)
	}
	if len(records) == 0 {
		return ImportResult{}, apperr.New(apperr.KindFormatMismatch, "CSV dosyası boş")
	}

	header := records[0]
	body := records[1:]

	kind := DetectKind(header)
	switch kind {
	case ImportStock:
		rows, err := parseStockRows(header, body)
		if err != nil {
			return ImportResult{}, err
		}
		if err := im.applyStockRows(rows); err != nil {
			return ImportResult{}, err
		}
		return ImportResult{Kind: ImportStock, Rows: len(rows)}, nil

	case ImportSales:
		rows, err := parseSalesRows(header, body)
		if err != nil {
			return ImportResult{}, err
		}
		if err := im.applySalesRows(rows); err != nil {
			return ImportResult{}, err
		}
		return ImportResult{Kind: ImportSales, Rows: len(rows)}, nil

	default:
		return ImportResult{}, apperr.New(apperr.KindFormatMismatch,
			"CSV kolonları beklenen formatlardan birine uymuyor")
	}
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return idx
}

func parseStockRows(header []string, body [][]string) ([]stockImportRow, error) {
	idx := columnIndex(header)

	rows := make([]stockImportRow, 0, len(body))
	for i, rec := range body {
		if len(rec) != len(header) {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: kolon sayısı başlıkla uyuşmuyor", i+2)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(rec[idx["date_added"]]))
		if err != nil {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: date_added 'YYYY-MM-DD' formatında olmalı", i+2)
		}
		name := strings.TrimSpace(rec[idx["product_name"]])
		if name == "" {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: product_name boş olamaz", i+2)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["price"]]), 64)
		if err != nil {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: price sayı olmalı", i+2)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(rec[idx["quantity"]]))
		if err != nil || quantity < 0 {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: quantity negatif olmayan tam sayı olmalı", i+2)
		}

		rows = append(rows, stockImportRow{date: date, name: name, price: price, quantity: quantity})
	}
	return rows, nil
}

func parseSalesRows(header []string, body [][]string) ([]salesImportRow, error) {
	idx := columnIndex(header)

	rows := make([]salesImportRow, 0, len(body))
	for i, rec := range body {
		if len(rec) != len(header) {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: kolon sayısı başlıkla uyuşmuyor", i+2)
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(rec[idx["date_of_sale"]]))
		if err != nil {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: date_of_sale 'YYYY-MM-DD' formatında olmalı", i+2)
		}
		name := strings.TrimSpace(rec[idx["product_name"]])
		if name == "" {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: product_name boş olamaz", i+2)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["price"]]), 64)
		if err != nil {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: price sayı olmalı", i+2)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(rec[idx["quantity"]]))
		if err != nil || quantity < 0 {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: quantity negatif olmayan tam sayı olmalı", i+2)
		}
		total, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["total"]]), 64)
		if err != nil {
			return nil, apperr.New(apperr.KindFormatMismatch, "Satır %d: total sayı olmalı", i+2)
		}

		rows = append(rows, salesImportRow{date: date, name: name, price: price, quantity: quantity, total: total})
	}
	return rows, nil
}

func (im *Importer) applyStockRows(rows []stockImportRow) error {
	return im.store.WithTx(func(tx *gorm.DB) error {
		for _, row := range rows {
			productID, err := store.UpsertProduct(tx, row.name, row.price)
			if err != nil {
				return err
			}
			if err := store.InsertStockEntry(tx, productID, row.date, row.quantity); err != nil {
				return fmt.Errorf("stok satırı yazılamadı (%s): %w", row.name, err)
			}
		}
		return nil
	})
}

func (im *Importer) applySalesRows(rows []salesImportRow) error {
	return im.store.WithTx(func(tx *gorm.DB) error {
		for _, row := range rows {
			productID, err := store.UpsertProduct(tx, row.name, row.price)
			if err != nil {
				return err
			}
			if _, err := store.InsertSaleRecord(tx, productID, row.date, row.quantity, row.total); err != nil {
				return fmt.Errorf("satış satırı yazılamadı (%s): %w", row.name, err)
			}
		}
		return nil
	})
}
