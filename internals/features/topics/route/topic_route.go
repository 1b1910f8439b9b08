package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topicController "traininghub_backend/internals/features/topics/controller"
)

func TopicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := topicController.NewTopicController(db)
	topics := api.Group("/topics")

	topics.Get("/", ctrl.GetAll)
	topics.Get("/:id", ctrl.GetByID)
	topics.Post("/", ctrl.Create)
	topics.Put("/:id", ctrl.Update)
	topics.Delete("/:id", ctrl.Delete)
}
