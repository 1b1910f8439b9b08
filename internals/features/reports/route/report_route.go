package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "traininghub_backend/internals/features/reports/controller"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)
	reports := api.Group("/reports")

	reports.Get("/trainings/:id/attendance", ctrl.TrainingAttendance)
	reports.Get("/trainings/:id/progress", ctrl.TrainingProgress)
}
