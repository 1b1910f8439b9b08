package model

// StudentModel is a trainee. Attendance, progress, assessment and
// certificate rows reference it; deleting a student cascades over those
// tables inside the delete handler, not via database constraints.
type StudentModel struct {
	ID   uint   `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name;size:100;not null"`
}

func (StudentModel) TableName() string {
	return "student"
}
