package model

import (
	"time"

	"gorm.io/datatypes"
)

// InstructorModel is a staff profile. Instructors are never physically
// removed; deactivation flips is_active so past topic references keep
// resolving. Expertise holds a JSON list of tags.
type InstructorModel struct {
	ID        uint           `json:"id" gorm:"column:id;primaryKey"`
	Name      string         `json:"name" gorm:"column:name;size:100;not null"`
	Role      string         `json:"role" gorm:"column:role;size:200"`
	Bio       string         `json:"bio" gorm:"column:bio;type:text"`
	Expertise datatypes.JSON `json:"expertise" gorm:"column:expertise"`
	Email     string         `json:"email" gorm:"column:email;size:100"`
	PhotoURL  string         `json:"photo_url" gorm:"column:photo_url;size:500"`
	IsActive  bool           `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (InstructorModel) TableName() string {
	return "instructor"
}

// TrainingInstructorModel links instructors to trainings. IsPrimary marks
// the instructor's main assignment; at most one primary per instructor,
// enforced by the link handler rather than a constraint.
type TrainingInstructorModel struct {
	TrainingID   uint `json:"training_id" gorm:"column:training_id;primaryKey"`
	InstructorID uint `json:"instructor_id" gorm:"column:instructor_id;primaryKey"`
	IsPrimary    bool `json:"is_primary" gorm:"column:is_primary;default:false"`
}

func (TrainingInstructorModel) TableName() string {
	return "training_instructors"
}
