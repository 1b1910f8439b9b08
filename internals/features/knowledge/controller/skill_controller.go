package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"traininghub_backend/internals/features/knowledge/dto"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type SkillController struct {
	DB *gorm.DB
}

func NewSkillController(db *gorm.DB) *SkillController {
	return &SkillController{DB: db}
}

// GET /api/knowledge/skills - active skills in display order; ?all=true
// includes soft-deleted ones.
func (ctrl *SkillController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}})
	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}

	var skills []knowledgeModel.KnowledgeSkillModel
	if err := q.Find(&skills).Error; err != nil {
		log.Println("[ERROR] list skills:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch skills")
	}
	return helper.Success(c, "OK", skills)
}

// POST /api/knowledge/skills - creates at the end of the display order.
// Re-creating a soft-deleted topic reactivates the existing row; an
// active duplicate is rejected.
func (ctrl *SkillController) Create(c *fiber.Ctx) error {
	var req dto.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var skill knowledgeModel.KnowledgeSkillModel
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var existing knowledgeModel.KnowledgeSkillModel
		err := tx.Where("topic = ?", req.Topic).First(&existing).Error
		switch {
		case err == nil:
			if existing.IsActive {
				return fiber.NewError(fiber.StatusConflict, "Skill topic already exists")
			}
			existing.IsActive = true
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			skill = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			nextOrder := 0
			var last knowledgeModel.KnowledgeSkillModel
			err := tx.Order(clause.OrderByColumn{
				Column: clause.Column{Name: "order"},
				Desc:   true,
			}).First(&last).Error
			switch {
			case err == nil:
				nextOrder = last.Order + 1
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
			skill = knowledgeModel.KnowledgeSkillModel{
				Topic:    req.Topic,
				Order:    nextOrder,
				IsActive: true,
			}
			return tx.Create(&skill).Error
		default:
			return err
		}
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] create skill:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create skill")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Skill created", skill)
}

// PUT /api/knowledge/skills/:id - rename. Every assessment tagged with the
// old topic string is rewritten to the new one in the same transaction;
// the response reports how many rows were reassigned. Renaming onto an
// existing topic is rejected.
func (ctrl *SkillController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var skill knowledgeModel.KnowledgeSkillModel
	var reassigned int64
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&skill, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Skill not found")
			}
			return err
		}

		if req.Topic != skill.Topic {
			var count int64
			if err := tx.Model(&knowledgeModel.KnowledgeSkillModel{}).
				Where("topic = ? AND id <> ?", req.Topic, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "Skill topic already exists")
			}

			res := tx.Model(&knowledgeModel.KnowledgeAssessmentModel{}).
				Where("topic = ?", skill.Topic).
				Update("topic", req.Topic)
			if res.Error != nil {
				return res.Error
			}
			reassigned = res.RowsAffected
		}

		skill.Topic = req.Topic
		if req.Order != nil {
			skill.Order = *req.Order
		}
		return tx.Save(&skill).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] update skill:", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update skill")
	}
	return helper.Success(c, "Skill updated", fiber.Map{
		"skill":                  skill,
		"assessments_reassigned": reassigned,
	})
}

// DELETE /api/knowledge/skills/:id - soft delete; assessments keep their
// topic string and the skill can be reactivated by re-creating the topic.
func (ctrl *SkillController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&knowledgeModel.KnowledgeSkillModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		log.Println("[ERROR] delete skill:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete skill")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Skill not found")
	}
	return helper.Success(c, "Skill deleted", fiber.Map{"id": id})
}
