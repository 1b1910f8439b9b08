package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorController "traininghub_backend/internals/features/instructors/controller"
)

func InstructorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := instructorController.NewInstructorController(db)
	instructors := api.Group("/instructors")

	instructors.Get("/", ctrl.GetAll)
	instructors.Get("/:id", ctrl.GetByID)
	instructors.Post("/", ctrl.Create)
	instructors.Put("/:id", ctrl.Update)
	instructors.Delete("/:id", ctrl.Deactivate)

	instructors.Get("/:id/trainings", ctrl.Trainings)
	instructors.Post("/:id/trainings", ctrl.LinkTraining)
	instructors.Delete("/:id/trainings/:trainingId", ctrl.UnlinkTraining)
}
