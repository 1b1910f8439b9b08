package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "traininghub_backend/internals/features/attendance/model"
	certificateModel "traininghub_backend/internals/features/certificates/model"
	instructorModel "traininghub_backend/internals/features/instructors/model"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
)

// Tables lists every persisted model in dependency order (parents first).
// cmd/migrate copies tables in exactly this order.
func Tables() []interface{} {
	return []interface{}{
		&trainingModel.TrainingModel{},
		&studentModel.StudentModel{},
		&instructorModel.InstructorModel{},
		&topicModel.TopicModel{},
		&knowledgeModel.KnowledgeSkillModel{},
		&attendanceModel.AttendanceModel{},
		&progressModel.ProgressModel{},
		&knowledgeModel.KnowledgeAssessmentModel{},
		&certificateModel.CertificateModel{},
		&instructorModel.TrainingInstructorModel{},
	}
}

// AutoMigrate creates or updates the schema for all entities.
func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(Tables()...); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("schema migrated")
}
