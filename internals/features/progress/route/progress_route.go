package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "traininghub_backend/internals/features/progress/controller"
)

func ProgressRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)
	progress := api.Group("/progress")

	progress.Get("/", ctrl.GetAll)
	progress.Get("/summary", ctrl.Summary)
	progress.Post("/", ctrl.Upsert)
	progress.Post("/bulk", ctrl.BulkUpsert)
}
