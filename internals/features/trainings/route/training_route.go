package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trainingController "traininghub_backend/internals/features/trainings/controller"
)

func TrainingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := trainingController.NewTrainingController(db)
	trainings := api.Group("/trainings")

	trainings.Get("/", ctrl.GetAll)
	trainings.Get("/:id", ctrl.GetByID)
	trainings.Post("/", ctrl.Create)
	trainings.Put("/:id", ctrl.Update)
	trainings.Delete("/:id", ctrl.Delete)
}
