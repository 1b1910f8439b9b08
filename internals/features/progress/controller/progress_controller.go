package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traininghub_backend/internals/features/progress/dto"
	progressModel "traininghub_backend/internals/features/progress/model"
	reportService "traininghub_backend/internals/features/reports/service"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// upsertOne applies the (student, topic) upsert inside tx.
func upsertOne(tx *gorm.DB, studentID, topicID uint, status string) error {
	var row progressModel.ProgressModel
	err := tx.Where("student_id = ? AND topic_id = ?", studentID, topicID).
		First(&row).Error
	switch {
	case err == nil:
		return tx.Model(&row).Update("status", status).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = progressModel.ProgressModel{
			StudentID: studentID,
			TopicID:   topicID,
			Status:    status,
		}
		return tx.Create(&row).Error
	default:
		return err
	}
}

// POST /api/progress
func (ctrl *ProgressController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return upsertOne(tx, req.StudentID, req.TopicID, req.Status)
	}); err != nil {
		log.Println("[ERROR] upsert progress:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record progress")
	}
	return helper.Success(c, "Progress recorded", req)
}

// POST /api/progress/bulk
func (ctrl *ProgressController) BulkUpsert(c *fiber.Ctx) error {
	var req dto.BulkUpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			if err := upsertOne(tx, entry.StudentID, req.TopicID, entry.Status); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] bulk upsert progress:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record progress")
	}
	return helper.Success(c, "Progress recorded", fiber.Map{
		"topic_id": req.TopicID,
		"count":    len(req.Entries),
	})
}

// GET /api/progress?topic_id=N&student_id=M
func (ctrl *ProgressController) GetAll(c *fiber.Ctx) error {
	topicID, err := helper.ParseUintQuery(c, "topic_id")
	if err != nil {
		return err
	}
	studentID, err := helper.ParseUintQuery(c, "student_id")
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).Order("id")
	if topicID != 0 {
		q = q.Where("topic_id = ?", topicID)
	}
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var rows []progressModel.ProgressModel
	if err := q.Find(&rows).Error; err != nil {
		log.Println("[ERROR] list progress:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}
	return helper.Success(c, "OK", rows)
}

// GET /api/progress/summary - the flat dashboard: completed topics per
// student over the whole curriculum.
func (ctrl *ProgressController) Summary(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).Order("id").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	var rows []progressModel.ProgressModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	var totalTopics int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&topicModel.TopicModel{}).
		Count(&totalTopics).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count topics")
	}

	return helper.Success(c, "OK", reportService.BuildProgressOverview(students, rows, int(totalTopics)))
}
