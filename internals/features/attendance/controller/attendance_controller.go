package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traininghub_backend/internals/features/attendance/dto"
	attendanceModel "traininghub_backend/internals/features/attendance/model"
	reportService "traininghub_backend/internals/features/reports/service"
	studentModel "traininghub_backend/internals/features/students/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// upsertOne applies the natural-key upsert inside tx: one row per
// (student, topic, date), last write wins.
func upsertOne(tx *gorm.DB, studentID, topicID uint, date time.Time, status string) error {
	var row attendanceModel.AttendanceModel
	err := tx.Where("student_id = ? AND topic_id = ? AND date = ?", studentID, topicID, date).
		First(&row).Error
	switch {
	case err == nil:
		return tx.Model(&row).Update("status", status).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = attendanceModel.AttendanceModel{
			StudentID: studentID,
			TopicID:   topicID,
			Date:      date,
			Status:    status,
		}
		return tx.Create(&row).Error
	default:
		return err
	}
}

// POST /api/attendance
func (ctrl *AttendanceController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		return upsertOne(tx, req.StudentID, req.TopicID, date, req.Status)
	}); err != nil {
		log.Println("[ERROR] upsert attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.Success(c, "Attendance recorded", req)
}

// POST /api/attendance/bulk - the attendance sheet: one topic/date, a
// status per student, all applied in one transaction.
func (ctrl *AttendanceController) BulkUpsert(c *fiber.Ctx) error {
	var req dto.BulkUpsertAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			if err := upsertOne(tx, entry.StudentID, req.TopicID, date, entry.Status); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] bulk upsert attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.Success(c, "Attendance recorded", fiber.Map{
		"topic_id": req.TopicID,
		"date":     req.Date,
		"count":    len(req.Entries),
	})
}

// GET /api/attendance?topic_id=N&student_id=M - raw rows, newest first.
func (ctrl *AttendanceController) GetAll(c *fiber.Ctx) error {
	topicID, err := helper.ParseUintQuery(c, "topic_id")
	if err != nil {
		return err
	}
	studentID, err := helper.ParseUintQuery(c, "student_id")
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).Order("date DESC, id DESC")
	if topicID != 0 {
		q = q.Where("topic_id = ?", topicID)
	}
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Find(&rows).Error; err != nil {
		log.Println("[ERROR] list attendance:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.Success(c, "OK", rows)
}

// GET /api/attendance/summary - the flat dashboard: per student, count of
// rows and Present rows over everything recorded.
func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).Order("id").Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	var rows []attendanceModel.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	return helper.Success(c, "OK", reportService.BuildAttendanceOverview(students, rows))
}
