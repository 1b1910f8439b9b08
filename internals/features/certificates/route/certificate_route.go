package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "traininghub_backend/internals/features/certificates/controller"
)

func CertificateRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := certificateController.NewCertificateController(db)
	certificates := api.Group("/certificates")

	certificates.Get("/", ctrl.GetAll)
	// The code lookup must register before /:id so "code" is not read as an id.
	certificates.Get("/code/:code", ctrl.GetByCode)
	certificates.Get("/:id", ctrl.GetByID)
	certificates.Post("/", ctrl.Create)
	certificates.Put("/:id", ctrl.Update)
	certificates.Post("/:id/issue", ctrl.Issue)
	certificates.Delete("/:id", ctrl.Delete)
}
