package sales

import (
	"bytes"
	"fmt"

	"shop-backend/internal/store"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

// Bill: bir satışın müşteriye verilecek özeti. Ekranda satır satır gösterilir
// (Lines), yazdırmak için PDF olarak da üretilir (PDF).
type Bill struct {
	Reference      string // fiş referans numarası
	DateOfSale     string
	ProductName    string
	UnitPrice      float64
	Quantity       int
	Total          float64
	CustomerName   string
	CustomerMobile string
}

func NewBill(sale store.SaleRow, customerName, customerMobile string) Bill {
	return Bill{
		Reference:      uuid.NewString(),
		DateOfSale:     sale.Date.Format("2006-01-02"),
		ProductName:    sale.ProductName,
		UnitPrice:      sale.Price,
		Quantity:       sale.Quantity,
		Total:          sale.Total,
		CustomerName:   customerName,
		CustomerMobile: customerMobile,
	}
}

type BillLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Lines: fişin ekranda gösterilecek anahtar/değer satırları.
func (b Bill) Lines() []BillLine {
	return []BillLine{
		{Label: "Date of Sale", Value: b.DateOfSale},
		{Label: "Product Name", Value: b.ProductName},
		{Label: "Price per Unit", Value: fmt.Sprintf("$%.2f", b.UnitPrice)},
		{Label: "Quantity Sold", Value: fmt.Sprintf("%d", b.Quantity)},
		{Label: "Total Amount", Value: fmt.Sprintf("$%.2f", b.Total)},
	}
}

// PDF: fişi indirilebilir belge olarak üretir. Başlık, müşteri bilgileri,
// satış detayları ve teşekkür mesajından oluşan tek sayfalık düzen.
func (b Bill) PDF() ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 10, "Sale Bill", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(100, 10, "Customer Information", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(100, 10, "Customer Name: "+b.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(100, 10, "Customer Mobile: "+b.CustomerMobile, "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 10, "Sale Details", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	details := []string{
		"Bill No: " + b.Reference,
		"Date of Sale: " + b.DateOfSale,
		"Product Name: " + b.ProductName,
		fmt.Sprintf("Price per Unit: $%.2f", b.UnitPrice),
		fmt.Sprintf("Quantity Sold: %d", b.Quantity),
		fmt.Sprintf("Total Amount: $%.2f", b.Total),
	}
	for _, line := range details {
		pdf.CellFormat(100, 8, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(20)
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, "Thank you for your purchase!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("fiş PDF'i üretilemedi: %w", err)
	}
	return buf.Bytes(), nil
}
