package model

import "time"

// CertificateModel is a printable completion certificate. Every text field
// is form-editable; UniqueCode is the public lookup token minted at
// issuance (8 uppercase hex chars, globally unique).
type CertificateModel struct {
	ID         uint  `json:"id" gorm:"column:id;primaryKey"`
	StudentID  uint  `json:"student_id" gorm:"column:student_id;not null;index"`
	TrainingID *uint `json:"training_id" gorm:"column:training_id;index"`

	Title    string `json:"title" gorm:"column:title;size:200;default:Certificate of Completion"`
	Subtitle string `json:"subtitle" gorm:"column:subtitle;size:200"`
	BodyText string `json:"body_text" gorm:"column:body_text;type:text"`

	CompletionDate *time.Time `json:"completion_date" gorm:"column:completion_date;type:date"`
	IssueDate      *time.Time `json:"issue_date" gorm:"column:issue_date;type:date"`

	Signature1Name  string `json:"signature1_name" gorm:"column:signature1_name;size:100"`
	Signature1Title string `json:"signature1_title" gorm:"column:signature1_title;size:100"`
	Signature2Name  string `json:"signature2_name" gorm:"column:signature2_name;size:100"`
	Signature2Title string `json:"signature2_title" gorm:"column:signature2_title;size:100"`
	Signature3Name  string `json:"signature3_name" gorm:"column:signature3_name;size:100"`
	Signature3Title string `json:"signature3_title" gorm:"column:signature3_title;size:100"`

	SealText string `json:"seal_text" gorm:"column:seal_text;size:100"`
	// Nil until issuance; NULLs keep the unique index happy for drafts.
	UniqueCode *string `json:"unique_code" gorm:"column:unique_code;size:8;uniqueIndex:uq_certificate_unique_code"`
	IsIssued   bool    `json:"is_issued" gorm:"column:is_issued;default:false"`
}

func (CertificateModel) TableName() string {
	return "certificate"
}
