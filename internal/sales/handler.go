package sales

import (
	"encoding/base64"

	"shop-backend/internal/apperr"
	"shop-backend/internal/dataio"
	"shop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type RecordSaleRequest struct {
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
}

type SaleResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type RecordSaleResponse struct {
	Sale          SaleResponse `json:"sale"`
	BillReference string       `json:"bill_reference"`
	BillLines     []BillLine   `json:"bill_lines"`
	BillPDF       string       `json:"bill_pdf"` // base64, gömülü gösterim/indirme için
}

// satış listesinin ekran/export kolonları
var salesTableHeader = []string{"ID", "Date of Sale", "Product", "Price", "Quantity", "Total"}

func toSaleResponse(r store.SaleRow) SaleResponse {
	return SaleResponse{
		ID:          r.ID,
		Date:        r.Date.Format("2006-01-02"),
		ProductName: r.ProductName,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Total:       r.Total,
	}
}

// POST /api/sales
func RecordSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		sale, bill, err := svc.Record(RecordInput{
			ProductName:    body.ProductName,
			Quantity:       body.Quantity,
			CustomerName:   body.CustomerName,
			CustomerMobile: body.CustomerMobile,
		})
		if err != nil {
			return apperr.ToHTTP(err)
		}

		pdfBytes, err := bill.PDF()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.Status(fiber.StatusCreated).JSON(RecordSaleResponse{
			Sale:          toSaleResponse(sale),
			BillReference: bill.Reference,
			BillLines:     bill.Lines(),
			BillPDF:       base64.StdEncoding.EncodeToString(pdfBytes),
		})
	}
}

// GET /api/sales
func ListSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.List()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		resp := make([]SaleResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, toSaleResponse(r))
		}
		return c.JSON(resp)
	}
}

// GET /api/sales/export.csv
func ExportSalesCSVHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.List()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		data, err := dataio.ExportCSV(salesTableHeader, dataio.SalesTableRows(rows))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales_data.csv"`)
		return c.Send(data)
	}
}

// GET /api/sales/export.xlsx
func ExportSalesXLSXHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.List()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		data, err := dataio.ExportXLSX("Sales", salesTableHeader, dataio.SalesTableRows(rows))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "XLSX oluşturulamadı: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales_data.xlsx"`)
		return c.Send(data)
	}
}
