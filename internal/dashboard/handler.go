package dashboard

import (
	"shop-backend/internal/apperr"
	"shop-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
)

type TopProductResponse struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

type SummaryResponse struct {
	TotalSalesAmount float64             `json:"total_sales_amount"`
	SaleCount        int64               `json:"sale_count"`
	TopProduct       *TopProductResponse `json:"top_product"` // hiç satış yoksa null
}

type DatePointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ProductSliceResponse struct {
	ProductName string  `json:"product_name"`
	Amount      float64 `json:"amount"`
}

// GET /api/dashboard/summary
func SummaryHandler(svc *sales.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agg, err := svc.Aggregates()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		resp := SummaryResponse{
			TotalSalesAmount: agg.TotalSalesAmount,
			SaleCount:        agg.SaleCount,
		}
		if agg.TopProduct != nil {
			resp.TopProduct = &TopProductResponse{
				Name:         agg.TopProduct.Name,
				QuantitySold: agg.TopProduct.QuantitySold,
			}
		}
		return c.JSON(resp)
	}
}

// GET /api/dashboard/sales-over-time
// Çizgi grafiğin veri noktaları: tarih bazlı satış toplamları, tarihe göre sıralı.
func SalesOverTimeHandler(svc *sales.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agg, err := svc.Aggregates()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		points := make([]DatePointResponse, 0, len(agg.SalesByDate))
		for _, p := range agg.SalesByDate {
			points = append(points, DatePointResponse{
				Date:   p.Date.Format("2006-01-02"),
				Amount: p.Amount,
			})
		}
		return c.JSON(points)
	}
}

// GET /api/dashboard/sales-by-product
// Halka grafiğin dilimleri: ürün bazlı satış toplamları.
func SalesByProductHandler(svc *sales.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		agg, err := svc.Aggregates()
		if err != nil {
			return apperr.ToHTTP(err)
		}

		slices := make([]ProductSliceResponse, 0, len(agg.SalesByProduct))
		for _, s := range agg.SalesByProduct {
			slices = append(slices, ProductSliceResponse{
				ProductName: s.ProductName,
				Amount:      s.Amount,
			})
		}
		return c.JSON(slices)
	}
}
