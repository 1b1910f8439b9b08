package model

// TrainingModel is a named curriculum whose topics are grouped into phases.
// The slug is derived from the name on create/update and is not unique.
type TrainingModel struct {
	ID          uint   `json:"id" gorm:"column:id;primaryKey"`
	Name        string `json:"name" gorm:"column:name;size:200;not null"`
	Slug        string `json:"slug" gorm:"column:slug;size:200"`
	Description string `json:"description" gorm:"column:description;type:text"`
}

func (TrainingModel) TableName() string {
	return "training"
}
