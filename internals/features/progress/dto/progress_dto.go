package dto

// UpsertProgressRequest targets the (student, topic) natural key.
type UpsertProgressRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	TopicID   uint   `json:"topic_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof='Not Started' 'In Progress' Completed"`
}

type BulkProgressEntry struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof='Not Started' 'In Progress' Completed"`
}

// BulkUpsertProgressRequest mirrors the topic page form: one topic, a
// status per student.
type BulkUpsertProgressRequest struct {
	TopicID uint                `json:"topic_id" validate:"required"`
	Entries []BulkProgressEntry `json:"entries" validate:"required,min=1,dive"`
}
