package dto

// UpsertAttendanceRequest targets the (student, topic, date) natural key:
// the matching row's status is overwritten, or a new row is inserted.
type UpsertAttendanceRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	TopicID   uint   `json:"topic_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Excused"`
}

// BulkAttendanceEntry is one student's status in a sheet submission.
type BulkAttendanceEntry struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Excused"`
}

// BulkUpsertAttendanceRequest mirrors the attendance sheet form: one topic
// and date, a status per student.
type BulkUpsertAttendanceRequest struct {
	TopicID uint                  `json:"topic_id" validate:"required"`
	Date    string                `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []BulkAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}
