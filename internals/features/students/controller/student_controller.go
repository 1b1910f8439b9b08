package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceModel "traininghub_backend/internals/features/attendance/model"
	certificateModel "traininghub_backend/internals/features/certificates/model"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	reportService "traininghub_backend/internals/features/reports/service"
	"traininghub_backend/internals/features/students/dto"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/students
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).Order("id").Find(&students).Error; err != nil {
		log.Println("[ERROR] list students:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.Success(c, "OK", students)
}

// GET /api/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	return helper.Success(c, "OK", student)
}

// GET /api/students/:id/profile - attendance/completion rates over the
// topics the student's rows touch, plus the assessment count.
func (ctrl *StudentController) Profile(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var attendanceRows []attendanceModel.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).
		Find(&attendanceRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	var progressRows []progressModel.ProgressModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_id = ?", id).
		Find(&progressRows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	topicIDs := make(map[uint]bool)
	for _, r := range attendanceRows {
		topicIDs[r.TopicID] = true
	}
	for _, r := range progressRows {
		topicIDs[r.TopicID] = true
	}
	ids := make([]uint, 0, len(topicIDs))
	for tid := range topicIDs {
		ids = append(ids, tid)
	}

	topicTrainings := make(map[uint]uint, len(ids))
	if len(ids) > 0 {
		var topics []topicModel.TopicModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("id", "training_id").
			Where("id IN ?", ids).
			Find(&topics).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topics")
		}
		for _, t := range topics {
			topicTrainings[t.ID] = t.TrainingID
		}
	}

	var assessments int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&knowledgeModel.KnowledgeAssessmentModel{}).
		Where("student_id = ?", id).
		Count(&assessments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count assessments")
	}

	profile := reportService.BuildStudentProfile(&student, attendanceRows, progressRows, topicTrainings, int(assessments))
	return helper.Success(c, "OK", profile)
}

// POST /api/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student := studentModel.StudentModel{Name: req.Name}
	if err := ctrl.DB.WithContext(c.Context()).Create(&student).Error; err != nil {
		log.Println("[ERROR] create student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", student)
}

// PUT /api/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	student.Name = req.Name
	if err := ctrl.DB.WithContext(c.Context()).Save(&student).Error; err != nil {
		log.Println("[ERROR] update student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", student)
}

// DELETE /api/students/:id - hard delete; every attendance, progress,
// assessment and certificate row of the student goes with it in one
// transaction so no orphans remain.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).
			Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).
			Delete(&knowledgeModel.KnowledgeAssessmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).
			Delete(&certificateModel.CertificateModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	}); err != nil {
		log.Println("[ERROR] delete student:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.Success(c, "Student deleted", fiber.Map{"id": id})
}
