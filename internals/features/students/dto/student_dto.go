package dto

// StudentRequest serves create and update (full-record replace).
type StudentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
