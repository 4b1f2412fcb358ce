package main

import (
	"log"
	"strings"

	"shop-backend/internal/config"
	"shop-backend/internal/dashboard"
	"shop-backend/internal/dataio"
	"shop-backend/internal/sales"
	"shop-backend/internal/stock"
	"shop-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Veritabanı başlatılamadı: %v", err)
	}
	defer st.Close()

	// Servisler aynı store tutamacını paylaşır. Tek oturum, tek süreç;
	// birden fazla süreçten eşzamanlı yazma desteklenmez.
	stockSvc := stock.NewService(st)
	salesSvc := sales.NewService(st)
	importer := dataio.NewImporter(st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	api := app.Group("/api")

	// Stok
	api.Get("/stock", stock.ListStockHandler(stockSvc))
	api.Post("/stock", stock.SaveStockHandler(stockSvc))
	api.Get("/stock/current", stock.CurrentStockHandler(stockSvc))
	api.Get("/stock/export.csv", stock.ExportStockCSVHandler(stockSvc))
	api.Get("/stock/export.xlsx", stock.ExportStockXLSXHandler(stockSvc))
	api.Get("/products", stock.ListProductNamesHandler(stockSvc))

	// Satış
	api.Post("/sales", sales.RecordSaleHandler(salesSvc))
	api.Get("/sales", sales.ListSalesHandler(salesSvc))
	api.Get("/sales/export.csv", sales.ExportSalesCSVHandler(salesSvc))
	api.Get("/sales/export.xlsx", sales.ExportSalesXLSXHandler(salesSvc))

	// Dashboard
	api.Get("/dashboard/summary", dashboard.SummaryHandler(salesSvc))
	api.Get("/dashboard/sales-over-time", dashboard.SalesOverTimeHandler(salesSvc))
	api.Get("/dashboard/sales-by-product", dashboard.SalesByProductHandler(salesSvc))

	// Veri aktarımı
	api.Post("/import", dataio.ImportHandler(importer))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
