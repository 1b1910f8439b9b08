package dto

import (
	"time"

	certificateModel "traininghub_backend/internals/features/certificates/model"
)

// CertificateRequest serves create and update (full-record replace of the
// editable fields; issuance state and the unique code are handler-owned).
type CertificateRequest struct {
	StudentID      uint   `json:"student_id" validate:"required"`
	TrainingID     *uint  `json:"training_id"`
	Title          string `json:"title" validate:"max=200"`
	Subtitle       string `json:"subtitle" validate:"max=200"`
	BodyText       string `json:"body_text"`
	CompletionDate string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`

	Signature1Name  string `json:"signature1_name" validate:"max=100"`
	Signature1Title string `json:"signature1_title" validate:"max=100"`
	Signature2Name  string `json:"signature2_name" validate:"max=100"`
	Signature2Title string `json:"signature2_title" validate:"max=100"`
	Signature3Name  string `json:"signature3_name" validate:"max=100"`
	Signature3Title string `json:"signature3_title" validate:"max=100"`

	SealText string `json:"seal_text" validate:"max=100"`
}

func (r *CertificateRequest) ApplyTo(m *certificateModel.CertificateModel) {
	m.StudentID = r.StudentID
	m.TrainingID = r.TrainingID

	title := r.Title
	if title == "" {
		title = "Certificate of Completion"
	}
	m.Title = title
	m.Subtitle = r.Subtitle
	m.BodyText = r.BodyText

	if r.CompletionDate != "" {
		d, _ := time.Parse("2006-01-02", r.CompletionDate)
		m.CompletionDate = &d
	} else {
		m.CompletionDate = nil
	}

	m.Signature1Name = r.Signature1Name
	m.Signature1Title = r.Signature1Title
	m.Signature2Name = r.Signature2Name
	m.Signature2Title = r.Signature2Title
	m.Signature3Name = r.Signature3Name
	m.Signature3Title = r.Signature3Title
	m.SealText = r.SealText
}
