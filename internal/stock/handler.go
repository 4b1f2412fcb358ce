package stock

import (
	"time"

	"shop-backend/internal/apperr"
	"shop-backend/internal/dataio"
	"shop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type StockRowResponse struct {
	Date        string  `json:"date"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type SaveStockRequest struct {
	Update   bool    `json:"update"` // true: mevcut ürünü güncelle, false: yeni kalem
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// stok listesinin ekran/export kolonları
var stockTableHeader = []string{"Date Added", "Product", "Price", "Available Stock"}

func parseStockFilter(c *fiber.Ctx) (store.StockFilter, error) {
	f := store.StockFilter{Search: c.Query("search")}

	if v := c.Query("from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "from tarihi 'YYYY-MM-DD' formatında olmalı")
		}
		f.From = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "to tarihi 'YYYY-MM-DD' formatında olmalı")
		}
		f.To = &d
	}
	return f, nil
}

// GET /api/stock?search=&from=&to=
func ListStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseStockFilter(c)
		if err != nil {
			return err
		}

		rows, err := svc.List(filter)
		if err != nil {
			return apperr.ToHTTP(err)
		}

		resp := make([]StockRowResponse, 0, len(rows))
		for _, r := range rows {
			resp = append(resp, StockRowResponse{
				Date:        r.Date.Format("2006-01-02"),
				ProductName: r.ProductName,
				Price:       r.Price,
				Quantity:    r.Quantity,
			})
		}
		return c.JSON(resp)
	}
}

// POST /api/stock
func SaveStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Update {
			if err := svc.UpdateExistingItem(body.Name, body.Price, body.Quantity); err != nil {
				return apperr.ToHTTP(err)
			}
			return c.JSON(fiber.Map{"message": "Stok kaydı güncellendi"})
		}

		if err := svc.AddNewItem(body.Name, body.Price, body.Quantity); err != nil {
			return apperr.ToHTTP(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Yeni stok kalemi eklendi"})
	}
}

// GET /api/stock/current
func CurrentStockHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		balances, err := svc.CurrentStock()
		if err != nil {
			return apperr.ToHTTP(err)
		}
		return c.JSON(balances)
	}
}

// GET /api/products
func ListProductNamesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := svc.ProductNames()
		if err != nil {
			return apperr.ToHTTP(err)
		}
		return c.JSON(names)
	}
}

// GET /api/stock/export.csv
func ExportStockCSVHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseStockFilter(c)
		if err != nil {
			return err
		}

		rows, err := svc.List(filter)
		if err != nil {
			return apperr.ToHTTP(err)
		}

		data, err := dataio.ExportCSV(stockTableHeader, dataio.StockTableRows(rows))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV oluşturulamadı: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_data.csv"`)
		return c.Send(data)
	}
}

// GET /api/stock/export.xlsx
func ExportStockXLSXHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, err := parseStockFilter(c)
		if err != nil {
			return err
		}

		rows, err := svc.List(filter)
		if err != nil {
			return apperr.ToHTTP(err)
		}

		data, err := dataio.ExportXLSX("Stock", stockTableHeader, dataio.StockTableRows(rows))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "XLSX oluşturulamadı: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_data.xlsx"`)
		return c.Send(data)
	}
}
