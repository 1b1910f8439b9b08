package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traininghub_backend/internals/features/instructors/dto"
	instructorModel "traininghub_backend/internals/features/instructors/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type InstructorController struct {
	DB *gorm.DB
}

func NewInstructorController(db *gorm.DB) *InstructorController {
	return &InstructorController{DB: db}
}

// GET /api/instructors - active profiles; ?all=true includes deactivated.
func (ctrl *InstructorController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Order("id")
	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}

	var instructors []instructorModel.InstructorModel
	if err := q.Find(&instructors).Error; err != nil {
		log.Println("[ERROR] list instructors:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch instructors")
	}
	return helper.Success(c, "OK", dto.FromInstructorModels(instructors))
}

// GET /api/instructors/:id
func (ctrl *InstructorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var instructor instructorModel.InstructorModel
	if err := ctrl.DB.WithContext(c.Context()).First(&instructor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Instructor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch instructor")
	}
	return helper.Success(c, "OK", dto.FromInstructorModel(&instructor))
}

// POST /api/instructors
func (ctrl *InstructorController) Create(c *fiber.Ctx) error {
	var req dto.InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	instructor := instructorModel.InstructorModel{IsActive: true}
	if err := req.ApplyTo(&instructor); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expertise tags")
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&instructor).Error; err != nil {
		log.Println("[ERROR] create instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create instructor")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Instructor created", dto.FromInstructorModel(&instructor))
}

// PUT /api/instructors/:id - full-record replace; is_active is not
// touched here, deactivation has its own endpoint.
func (ctrl *InstructorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var instructor instructorModel.InstructorModel
	if err := ctrl.DB.WithContext(c.Context()).First(&instructor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Instructor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch instructor")
	}

	if err := req.ApplyTo(&instructor); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid expertise tags")
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&instructor).Error; err != nil {
		log.Println("[ERROR] update instructor:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update instructor")
	}
	return helper.Success(c, "Instructor updated", dto.FromInstructorModel(&instructor))
}

// DELETE /api/instructors/:id - soft delete only; the row stays so topic
// and training references keep resolving.
func (ctrl *InstructorController) Deactivate(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&instructorModel.InstructorModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		log.Println("[ERROR] deactivate instructor:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate instructor")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Instructor not found")
	}
	return helper.Success(c, "Instructor deactivated", fiber.Map{"id": id})
}

// GET /api/instructors/:id/trainings
func (ctrl *InstructorController) Trainings(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.mustExist(c, id); err != nil {
		return err
	}

	var links []instructorModel.TrainingInstructorModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("instructor_id = ?", id).
		Find(&links).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch links")
	}

	trainingIDs := make([]uint, 0, len(links))
	primary := make(map[uint]bool, len(links))
	for _, l := range links {
		trainingIDs = append(trainingIDs, l.TrainingID)
		primary[l.TrainingID] = l.IsPrimary
	}

	out := make([]dto.LinkedTrainingResponse, 0, len(links))
	if len(trainingIDs) > 0 {
		var trainings []trainingModel.TrainingModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("id IN ?", trainingIDs).
			Order("id").
			Find(&trainings).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch trainings")
		}
		for _, t := range trainings {
			out = append(out, dto.LinkedTrainingResponse{
				TrainingID:   t.ID,
				TrainingName: t.Name,
				Slug:         t.Slug,
				IsPrimary:    primary[t.ID],
			})
		}
	}
	return helper.Success(c, "OK", out)
}

// POST /api/instructors/:id/trainings - link (or update an existing
// link's primary flag). Marking a link primary clears the flag on the
// instructor's other links in the same transaction, so at most one
// primary training per instructor survives.
func (ctrl *InstructorController) LinkTraining(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	if err := ctrl.mustExist(c, id); err != nil {
		return err
	}

	var req dto.LinkTrainingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

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

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if req.IsPrimary {
			if err := tx.Model(&instructorModel.TrainingInstructorModel{}).
				Where("instructor_id = ? AND training_id <> ?", id, req.TrainingID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}

		var link instructorModel.TrainingInstructorModel
		err := tx.Where("instructor_id = ? AND training_id = ?", id, req.TrainingID).
			First(&link).Error
		switch {
		case err == nil:
			return tx.Model(&instructorModel.TrainingInstructorModel{}).
				Where("instructor_id = ? AND training_id = ?", id, req.TrainingID).
				Update("is_primary", req.IsPrimary).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			link = instructorModel.TrainingInstructorModel{
				TrainingID:   req.TrainingID,
				InstructorID: id,
				IsPrimary:    req.IsPrimary,
			}
			return tx.Create(&link).Error
		default:
			return err
		}
	}); err != nil {
		log.Println("[ERROR] link training:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to link training")
	}
	return helper.Success(c, "Training linked", fiber.Map{
		"instructor_id": id,
		"training_id":   req.TrainingID,
		"is_primary":    req.IsPrimary,
	})
}

// DELETE /api/instructors/:id/trainings/:trainingId
func (ctrl *InstructorController) UnlinkTraining(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}
	trainingID, err := helper.ParseUintParam(c, "trainingId")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("instructor_id = ? AND training_id = ?", id, trainingID).
		Delete(&instructorModel.TrainingInstructorModel{})
	if res.Error != nil {
		log.Println("[ERROR] unlink training:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unlink training")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Link not found")
	}
	return helper.Success(c, "Training unlinked", fiber.Map{
		"instructor_id": id,
		"training_id":   trainingID,
	})
}

func (ctrl *InstructorController) mustExist(c *fiber.Ctx, id uint) error {
	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&instructorModel.InstructorModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify instructor")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Instructor not found")
	}
	return nil
}
