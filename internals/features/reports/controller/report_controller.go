package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "traininghub_backend/internals/features/attendance/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	"traininghub_backend/internals/features/reports/service"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	helper "traininghub_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// loadTrainingRows materializes everything one training summary needs:
// the training, its topics in display order, and all students. Failures
// come back as errors for the handler to translate, never as a written
// response.
func (ctrl *ReportController) loadTrainingRows(c *fiber.Ctx, id uint) (
	*trainingModel.TrainingModel,
	[]topicModel.TopicModel,
	[]studentModel.StudentModel,
	[]uint,
	error,
) {
	var training trainingModel.TrainingModel
	if err := ctrl.DB.WithContext(c.Context()).First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, fiber.NewError(fiber.StatusNotFound, "Training not found")
		}
		return nil, nil, nil, nil, err
	}

	var topics []topicModel.TopicModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("training_id = ?", id).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&topics).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).Order("id").Find(&students).Error; err != nil {
		return nil, nil, nil, nil, err
	}

	topicIDs := make([]uint, 0, len(topics))
	for _, t := range topics {
		topicIDs = append(topicIDs, t.ID)
	}
	return &training, topics, students, topicIDs, nil
}

// loadError turns a loadTrainingRows failure into the error envelope.
func (ctrl *ReportController) loadError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR] load training rows:", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch training")
}

// GET /api/reports/trainings/:id/attendance
func (ctrl *ReportController) TrainingAttendance(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	training, topics, students, topicIDs, err := ctrl.loadTrainingRows(c, id)
	if err != nil {
		return ctrl.loadError(c, err)
	}

	var rows []attendanceModel.AttendanceModel
	if len(topicIDs) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("topic_id IN ?", topicIDs).
			Find(&rows).Error; err != nil {
			log.Println("[ERROR] load attendance rows:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
		}
	}

	summary := service.BuildTrainingAttendanceSummary(training, topics, students, rows)
	return helper.Success(c, "OK", summary)
}

// GET /api/reports/trainings/:id/progress
func (ctrl *ReportController) TrainingProgress(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	training, topics, students, topicIDs, err := ctrl.loadTrainingRows(c, id)
	if err != nil {
		return ctrl.loadError(c, err)
	}

	var rows []progressModel.ProgressModel
	if len(topicIDs) > 0 {
		if err := ctrl.DB.WithContext(c.Context()).
			Where("topic_id IN ?", topicIDs).
			Find(&rows).Error; err != nil {
			log.Println("[ERROR] load progress rows:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch progress")
		}
	}

	summary := service.BuildTrainingProgressSummary(training, topics, students, rows)
	return helper.Success(c, "OK", summary)
}
