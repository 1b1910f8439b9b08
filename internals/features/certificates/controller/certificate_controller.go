package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"traininghub_backend/internals/features/certificates/dto"
	certificateModel "traininghub_backend/internals/features/certificates/model"
	studentModel "traininghub_backend/internals/features/students/model"
	helper "traininghub_backend/internals/helpers"
)

var validate = validator.New()

type CertificateController struct {
	DB *gorm.DB
}

func NewCertificateController(db *gorm.DB) *CertificateController {
	return &CertificateController{DB: db}
}

// GET /api/certificates?student_id=N
func (ctrl *CertificateController) GetAll(c *fiber.Ctx) error {
	studentID, err := helper.ParseUintQuery(c, "student_id")
	if err != nil {
		return err
	}

	q := ctrl.DB.WithContext(c.Context()).Order("id")
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}

	var certificates []certificateModel.CertificateModel
	if err := q.Find(&certificates).Error; err != nil {
		log.Println("[ERROR] list certificates:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificates")
	}
	return helper.Success(c, "OK", certificates)
}

// GET /api/certificates/:id
func (ctrl *CertificateController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var certificate certificateModel.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&certificate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificate")
	}
	return helper.Success(c, "OK", certificate)
}

// GET /api/certificates/code/:code - the public verification lookup,
// keyed by the 8-character issuance token.
func (ctrl *CertificateController) GetByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid code")
	}

	var certificate certificateModel.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("unique_code = ?", code).
		First(&certificate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificate")
	}
	return helper.Success(c, "OK", certificate)
}

// POST /api/certificates - creates a draft; issuance is separate.
func (ctrl *CertificateController) Create(c *fiber.Ctx) error {
	var req dto.CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&studentModel.StudentModel{}).
		Where("id = ?", req.StudentID).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify student")
	}
	if count == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	var certificate certificateModel.CertificateModel
	req.ApplyTo(&certificate)
	if err := ctrl.DB.WithContext(c.Context()).Create(&certificate).Error; err != nil {
		log.Println("[ERROR] create certificate:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create certificate")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate created", certificate)
}

// PUT /api/certificates/:id - full replace of the editable fields; the
// unique code and issuance flag survive edits.
func (ctrl *CertificateController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var certificate certificateModel.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&certificate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificate")
	}

	req.ApplyTo(&certificate)
	if err := ctrl.DB.WithContext(c.Context()).Save(&certificate).Error; err != nil {
		log.Println("[ERROR] update certificate:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update certificate")
	}
	return helper.Success(c, "Certificate updated", certificate)
}

// POST /api/certificates/:id/issue - mints the unique code and stamps the
// issue date. Issuing twice keeps the original code.
func (ctrl *CertificateController) Issue(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	var certificate certificateModel.CertificateModel
	if err := ctrl.DB.WithContext(c.Context()).First(&certificate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certificate")
	}

	if certificate.UniqueCode == nil {
		code := helper.GenerateCertificateCode()
		certificate.UniqueCode = &code
	}
	if certificate.IssueDate == nil {
		now := time.Now()
		certificate.IssueDate = &now
	}
	certificate.IsIssued = true

	if err := ctrl.DB.WithContext(c.Context()).Save(&certificate).Error; err != nil {
		log.Println("[ERROR] issue certificate:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue certificate")
	}
	return helper.Success(c, "Certificate issued", certificate)
}

// DELETE /api/certificates/:id - hard delete.
func (ctrl *CertificateController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUintParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&certificateModel.CertificateModel{}, id)
	if res.Error != nil {
		log.Println("[ERROR] delete certificate:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete certificate")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
	}
	return helper.Success(c, "Certificate deleted", fiber.Map{"id": id})
}
