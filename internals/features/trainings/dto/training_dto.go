package dto

import (
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
)

// TrainingRequest serves create and update; edits are full-record
// replacements, so both carry every field.
type TrainingRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
}

type TrainingResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func FromTrainingModel(m *trainingModel.TrainingModel) TrainingResponse {
	return TrainingResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
	}
}

func FromTrainingModels(ms []trainingModel.TrainingModel) []TrainingResponse {
	out := make([]TrainingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromTrainingModel(&ms[i]))
	}
	return out
}

// PhaseGroup is one phase bucket of a training detail, topics in display order.
type PhaseGroup struct {
	Phase  string                  `json:"phase"`
	Topics []topicModel.TopicModel `json:"topics"`
}

// TrainingDetailResponse is the training page payload: the training plus
// its topics grouped by phase, phases in first-seen topic order.
type TrainingDetailResponse struct {
	TrainingResponse
	Phases []PhaseGroup `json:"phases"`
}
