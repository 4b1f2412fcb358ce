package dataio

import (
	"strings"

	"shop-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// POST /api/import
// CSV dosyasını yükler; format başlıktan belirlenir (stok veya satış).
func ImportHandler(im *Importer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .csv dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		result, err := im.ImportCSV(file)
		if err != nil {
			return apperr.ToHTTP(err)
		}

		return c.JSON(fiber.Map{
			"message": "Veri başarıyla içeri alındı",
			"kind":    result.Kind.String(),
			"rows":    result.Rows,
		})
	}
}
