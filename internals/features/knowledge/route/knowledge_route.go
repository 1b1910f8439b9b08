package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	knowledgeController "traininghub_backend/internals/features/knowledge/controller"
)

func KnowledgeRoutes(api fiber.Router, db *gorm.DB) {
	skillCtrl := knowledgeController.NewSkillController(db)
	assessmentCtrl := knowledgeController.NewAssessmentController(db)
	knowledge := api.Group("/knowledge")

	skills := knowledge.Group("/skills")
	skills.Get("/", skillCtrl.GetAll)
	skills.Post("/", skillCtrl.Create)
	skills.Put("/:id", skillCtrl.Update)
	skills.Delete("/:id", skillCtrl.Delete)

	assessments := knowledge.Group("/assessments")
	assessments.Get("/student/:studentId", assessmentCtrl.GetByStudent)
	assessments.Post("/", assessmentCtrl.Upsert)
	assessments.Delete("/:id", assessmentCtrl.Delete)
}
