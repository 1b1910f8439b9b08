package model

// TopicModel is a single lesson within a training. Phase is a free-form
// display bucket (empty means "Other"); Instructor is the display name as
// entered on the form, not a foreign key. Order drives the display sequence
// within a phase.
type TopicModel struct {
	ID          uint   `json:"id" gorm:"column:id;primaryKey"`
	TrainingID  uint   `json:"training_id" gorm:"column:training_id;not null;index"`
	Name        string `json:"name" gorm:"column:name;size:200;not null"`
	Phase       string `json:"phase" gorm:"column:phase;size:50"`
	Instructor  string `json:"instructor" gorm:"column:instructor;size:100"`
	VideoURL    string `json:"video_url" gorm:"column:video_url;size:500"`
	Description string `json:"description" gorm:"column:description;type:text"`
	Order       int    `json:"order" gorm:"column:order"`
}

func (TopicModel) TableName() string {
	return "topic"
}
