package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	instructorModel "traininghub_backend/internals/features/instructors/model"
)

// InstructorRequest serves create and update (full-record replace).
// Expertise arrives as a plain tag list and is stored as JSON.
type InstructorRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Role      string   `json:"role" validate:"max=200"`
	Bio       string   `json:"bio"`
	Expertise []string `json:"expertise"`
	Email     string   `json:"email" validate:"omitempty,email,max=100"`
	PhotoURL  string   `json:"photo_url" validate:"omitempty,url,max=500"`
}

func (r *InstructorRequest) ApplyTo(m *instructorModel.InstructorModel) error {
	raw, err := json.Marshal(r.Expertise)
	if err != nil {
		return err
	}
	m.Name = r.Name
	m.Role = r.Role
	m.Bio = r.Bio
	m.Expertise = datatypes.JSON(raw)
	m.Email = r.Email
	m.PhotoURL = r.PhotoURL
	return nil
}

type InstructorResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Expertise []string  `json:"expertise"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromInstructorModel(m *instructorModel.InstructorModel) InstructorResponse {
	tags := []string{}
	if len(m.Expertise) > 0 {
		_ = json.Unmarshal(m.Expertise, &tags)
	}
	return InstructorResponse{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Bio:       m.Bio,
		Expertise: tags,
		Email:     m.Email,
		PhotoURL:  m.PhotoURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func FromInstructorModels(ms []instructorModel.InstructorModel) []InstructorResponse {
	out := make([]InstructorResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromInstructorModel(&ms[i]))
	}
	return out
}

// LinkTrainingRequest links an instructor to a training; IsPrimary marks
// the training as the instructor's main assignment.
type LinkTrainingRequest struct {
	TrainingID uint `json:"training_id" validate:"required"`
	IsPrimary  bool `json:"is_primary"`
}

// LinkedTrainingResponse is one row of an instructor's training list.
type LinkedTrainingResponse struct {
	TrainingID   uint   `json:"training_id"`
	TrainingName string `json:"training_name"`
	Slug         string `json:"slug"`
	IsPrimary    bool   `json:"is_primary"`
}
