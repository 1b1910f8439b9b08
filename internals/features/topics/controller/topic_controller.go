package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "traininghub_backend/internals/features/attendance/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	"traininghub_backend/internals/features/topics/dto"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type TopicController struct {
	DB *gorm.DB
}

func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{DB: db}
}

// GET /api/topics?training_id=N - all topics, or one training's topics, in
// display order.
func (ctrl *TopicController) GetAll(c *fiber.Ctx) error {
	trainingID, err := helper.ParseUintQuery(c, "training_id")
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
	if trainingID != 0 {
		q = q.Where("training_id = ?", trainingID)
	}

	var topics []topicModel.TopicModel
	if err := q.Find(&topics).Error; err != nil {
		log.Println("[ERROR] list topics:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topics")
	}
	return helper.Success(c, "OK", topics)
}

// GET /api/topics/:id
func (ctrl *TopicController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.WithContext(c.Context()).First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topic not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic")
	}
	return helper.Success(c, "OK", topic)
}

// POST /api/topics
func (ctrl *TopicController) Create(c *fiber.Ctx) error {
	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// The parent training must exist; topic rows without one are unreachable.
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&trainingModel.TrainingModel{}).
		Where("id = ?", req.TrainingID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify training")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Training not found")
	}

	topic := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&topic).Error; err != nil {
		log.Println("[ERROR] create topic:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create topic")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Topic created", topic)
}

// PUT /api/topics/:id - full-record replace.
func (ctrl *TopicController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.TopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.WithContext(c.Context()).First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topic not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic")
	}

	req.ApplyTo(&topic)
	if err := ctrl.DB.WithContext(c.Context()).Save(&topic).Error; err != nil {
		log.Println("[ERROR] update topic:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update topic")
	}
	return helper.Success(c, "Topic updated", topic)
}

// DELETE /api/topics/:id - hard delete; the topic's attendance and
// progress rows go with it in one transaction.
func (ctrl *TopicController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var topic topicModel.TopicModel
	if err := ctrl.DB.WithContext(c.Context()).First(&topic, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topic not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic")
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).
			Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&topic).Error
	}); err != nil {
		log.Println("[ERROR] delete topic:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete topic")
	}
	return helper.Success(c, "Topic deleted", fiber.Map{"id": id})
}
