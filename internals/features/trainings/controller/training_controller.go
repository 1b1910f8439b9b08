package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"traininghub_backend/internals/constants"
	attendanceModel "traininghub_backend/internals/features/attendance/model"
	certificateModel "traininghub_backend/internals/features/certificates/model"
	instructorModel "traininghub_backend/internals/features/instructors/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	"traininghub_backend/internals/features/topics/model"
	"traininghub_backend/internals/features/trainings/dto"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type TrainingController struct {
	DB *gorm.DB
}

func NewTrainingController(db *gorm.DB) *TrainingController {
	return &TrainingController{DB: db}
}

// GET /api/trainings
func (ctrl *TrainingController) GetAll(c *fiber.Ctx) error {
	var trainings []trainingModel.TrainingModel
	if err := ctrl.DB.WithContext(c.Context()).Find(&trainings).Error; err != nil {
		log.Println("[ERROR] list trainings:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch trainings")
	}
	return helper.Success(c, "OK", dto.FromTrainingModels(trainings))
}

// GET /api/trainings/:id - training plus its topics grouped by phase.
func (ctrl *TrainingController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var training trainingModel.TrainingModel
	if err := ctrl.DB.WithContext(c.Context()).First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Training not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch training")
	}

	var topics []model.TopicModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("training_id = ?", id).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Find(&topics).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}

	detail := dto.TrainingDetailResponse{
		TrainingResponse: dto.FromTrainingModel(&training),
		Phases:           groupByPhase(topics),
	}
	return helper.Success(c, "OK", detail)
}

// groupByPhase buckets ordered topics by phase, phases in first-seen order.
func groupByPhase(topics []model.TopicModel) []dto.PhaseGroup {
	groups := make([]dto.PhaseGroup, 0)
	index := make(map[string]int)
	for _, t := range topics {
		phase := t.Phase
		if phase == "" {
			phase = constants.PhaseFallback
		}
		i, ok := index[phase]
		if !ok {
			i = len(groups)
			index[phase] = i
			groups = append(groups, dto.PhaseGroup{Phase: phase, Topics: []model.TopicModel{}})
		}
		groups[i].Topics = append(groups[i].Topics, t)
	}
	return groups
}

// POST /api/trainings
func (ctrl *TrainingController) Create(c *fiber.Ctx) error {
	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	training := trainingModel.TrainingModel{
		Name:        req.Name,
		Slug:        helper.GenerateSlug(req.Name),
		Description: req.Description,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&training).Error; err != nil {
		log.Println("[ERROR] create training:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create training")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Training created", dto.FromTrainingModel(&training))
}

// PUT /api/trainings/:id - full-record replace; the slug follows the name.
func (ctrl *TrainingController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.TrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var training trainingModel.TrainingModel
	if err := ctrl.DB.WithContext(c.Context()).First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Training not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch training")
	}

	training.Name = req.Name
	training.Slug = helper.GenerateSlug(req.Name)
	training.Description = req.Description
	if err := ctrl.DB.WithContext(c.Context()).Save(&training).Error; err != nil {
		log.Println("[ERROR] update training:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update training")
	}
	return helper.Success(c, "Training updated", dto.FromTrainingModel(&training))
}

// DELETE /api/trainings/:id - hard delete with manual cascade: the
// training's topics go, along with their attendance and progress rows;
// instructor links are removed and certificates are detached (training_id
// set to NULL) rather than destroyed.
func (ctrl *TrainingController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var training trainingModel.TrainingModel
	if err := ctrl.DB.WithContext(c.Context()).First(&training, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Training not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch training")
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var topicIDs []uint
		if err := tx.Model(&model.TopicModel{}).
			Where("training_id = ?", id).
			Pluck("id", &topicIDs).Error; err != nil {
			return err
		}
		if len(topicIDs) > 0 {
			if err := tx.Where("topic_id IN ?", topicIDs).
				Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("topic_id IN ?", topicIDs).
				Delete(&progressModel.ProgressModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("training_id = ?", id).
				Delete(&model.TopicModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("training_id = ?", id).
			Delete(&instructorModel.TrainingInstructorModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&certificateModel.CertificateModel{}).
			Where("training_id = ?", id).
			Update("training_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&training).Error
	}); err != nil {
		log.Println("[ERROR] delete training:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete training")
	}
	return helper.Success(c, "Training deleted", fiber.Map{"id": id})
}
