package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"traininghub_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the shared middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
