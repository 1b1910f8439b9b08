package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "traininghub_backend/internals/features/attendance/route"
	certificateRoute "traininghub_backend/internals/features/certificates/route"
	instructorRoute "traininghub_backend/internals/features/instructors/route"
	knowledgeRoute "traininghub_backend/internals/features/knowledge/route"
	progressRoute "traininghub_backend/internals/features/progress/route"
	reportRoute "traininghub_backend/internals/features/reports/route"
	studentRoute "traininghub_backend/internals/features/students/route"
	topicRoute "traininghub_backend/internals/features/topics/route"
	trainingRoute "traininghub_backend/internals/features/trainings/route"
)

var startTime time.Time

// SetupRoutes mounts every feature router under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] mounting training routes")
	trainingRoute.TrainingRoutes(api, db)
	topicRoute.TopicRoutes(api, db)

	log.Println("[INFO] mounting people routes")
	studentRoute.StudentRoutes(api, db)
	instructorRoute.InstructorRoutes(api, db)

	log.Println("[INFO] mounting tracking routes")
	attendanceRoute.AttendanceRoutes(api, db)
	progressRoute.ProgressRoutes(api, db)

	log.Println("[INFO] mounting knowledge routes")
	knowledgeRoute.KnowledgeRoutes(api, db)

	log.Println("[INFO] mounting certificate routes")
	certificateRoute.CertificateRoutes(api, db)

	log.Println("[INFO] mounting report routes")
	reportRoute.ReportRoutes(api, db)
}
