package dto

import (
	topicModel "traininghub_backend/internals/features/topics/model"
)

// TopicRequest serves create and update (full-record replace).
type TopicRequest struct {
	TrainingID  uint   `json:"training_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=200"`
	Phase       string `json:"phase" validate:"max=50"`
	Instructor  string `json:"instructor" validate:"max=100"`
	VideoURL    string `json:"video_url" validate:"omitempty,url,max=500"`
	Description string `json:"description"`
	Order       int    `json:"order" validate:"min=0"`
}

func (r *TopicRequest) ToModel() topicModel.TopicModel {
	return topicModel.TopicModel{
		TrainingID:  r.TrainingID,
		Name:        r.Name,
		Phase:       r.Phase,
		Instructor:  r.Instructor,
		VideoURL:    r.VideoURL,
		Description: r.Description,
		Order:       r.Order,
	}
}

func (r *TopicRequest) ApplyTo(m *topicModel.TopicModel) {
	m.TrainingID = r.TrainingID
	m.Name = r.Name
	m.Phase = r.Phase
	m.Instructor = r.Instructor
	m.VideoURL = r.VideoURL
	m.Description = r.Description
	m.Order = r.Order
}
