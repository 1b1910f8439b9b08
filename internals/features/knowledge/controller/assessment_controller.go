package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traininghub_backend/internals/features/knowledge/dto"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	studentModel "traininghub_backend/internals/features/students/model"
	helper "traininghub_backend/internals/helpers"
)

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

// GET /api/knowledge/assessments/student/:studentId
func (ctrl *AssessmentController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUintParam(c, "studentId")
	if err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&studentModel.StudentModel{}).
		Where("id = ?", studentID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify student")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	var assessments []knowledgeModel.KnowledgeAssessmentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", studentID).
		Order("topic").
		Find(&assessments).Error; err != nil {
		log.Println("[ERROR] list assessments:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch assessments")
	}
	return helper.Success(c, "OK", assessments)
}

// POST /api/knowledge/assessments - upsert on (student, topic);
// last_updated refreshes on every write.
func (ctrl *AssessmentController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assessment knowledgeModel.KnowledgeAssessmentModel
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_id = ? AND topic = ?", req.StudentID, req.Topic).
			First(&assessment).Error
		switch {
		case err == nil:
			assessment.ProficiencyLevel = req.ProficiencyLevel
			assessment.LastUpdated = time.Now()
			return tx.Save(&assessment).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			assessment = knowledgeModel.KnowledgeAssessmentModel{
				StudentID:        req.StudentID,
				Topic:            req.Topic,
				ProficiencyLevel: req.ProficiencyLevel,
				LastUpdated:      time.Now(),
			}
			return tx.Create(&assessment).Error
		default:
			return err
		}
	}); err != nil {
		log.Println("[ERROR] upsert assessment:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record assessment")
	}
	return helper.Success(c, "Assessment recorded", assessment)
}

// DELETE /api/knowledge/assessments/:id
func (ctrl *AssessmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&knowledgeModel.KnowledgeAssessmentModel{}, id)
	if res.Error != nil {
		log.Println("[ERROR] delete assessment:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete assessment")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Assessment not found")
	}
	return helper.Success(c, "Assessment deleted", fiber.Map{"id": id})
}
