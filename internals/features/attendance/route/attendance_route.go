package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "traininghub_backend/internals/features/attendance/controller"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	attendance := api.Group("/attendance")

	attendance.Get("/", ctrl.GetAll)
	attendance.Get("/summary", ctrl.Summary)
	attendance.Post("/", ctrl.Upsert)
	attendance.Post("/bulk", ctrl.BulkUpsert)
}
