package model

import "time"

// AttendanceModel records one student's status for a topic on a date.
// (student_id, topic_id, date) is the natural key; the unique index backs
// the handler's upsert so racing submissions cannot fork duplicates.
// The most-recently-dated row per (student, topic) is the current status.
type AttendanceModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	StudentID uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_attendance_student_topic_date"`
	TopicID   uint      `json:"topic_id" gorm:"column:topic_id;not null;uniqueIndex:uq_attendance_student_topic_date"`
	Date      time.Time `json:"date" gorm:"column:date;type:date;uniqueIndex:uq_attendance_student_topic_date"`
	Status    string    `json:"status" gorm:"column:status;size:20"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
