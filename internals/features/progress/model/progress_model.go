package model

// ProgressModel tracks one student's completion state for a topic.
// (student_id, topic_id) is the natural key; a missing row reads as
// "Not Started" everywhere.
type ProgressModel struct {
	ID        uint   `json:"id" gorm:"column:id;primaryKey"`
	StudentID uint   `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_progress_student_topic"`
	TopicID   uint   `json:"topic_id" gorm:"column:topic_id;not null;uniqueIndex:uq_progress_student_topic"`
	Status    string `json:"status" gorm:"column:status;size:20"`
}

func (ProgressModel) TableName() string {
	return "progress"
}
