package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "traininghub_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	students := api.Group("/students")

	students.Get("/", ctrl.GetAll)
	students.Get("/:id", ctrl.GetByID)
	students.Get("/:id/profile", ctrl.Profile)
	students.Post("/", ctrl.Create)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
