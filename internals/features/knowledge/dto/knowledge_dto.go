package dto

// CreateSkillRequest adds an assessable topic. Order is assigned by the
// handler (max existing order + 1).
type CreateSkillRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
}

// UpdateSkillRequest renames a skill topic; assessments carrying the old
// string are rewritten in the same transaction.
type UpdateSkillRequest struct {
	Topic string `json:"topic" validate:"required,max=200"`
	Order *int   `json:"order" validate:"omitempty,min=0"`
}

// UpsertAssessmentRequest targets the (student, topic) natural key.
type UpsertAssessmentRequest struct {
	StudentID        uint   `json:"student_id" validate:"required"`
	Topic            string `json:"topic" validate:"required,max=200"`
	ProficiencyLevel string `json:"proficiency_level" validate:"required,oneof=Beginner Intermediate Advance Expert"`
}
