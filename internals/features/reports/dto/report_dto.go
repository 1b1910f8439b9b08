package dto

// AttendanceTotals accumulates one student's attendance counts at phase or
// training granularity. Pairs with no attendance row count toward Total
// and toward no status bucket. Percentage is Present*100/Total, truncated,
// 0 when Total is 0.
type AttendanceTotals struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Excused    int `json:"excused"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ProgressTotals accumulates one student's progress counts. Pairs with no
// progress row count as Not Started.
type ProgressTotals struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type StudentRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TopicStatuses is one topic row of a summary: the per-student current
// status keyed by student id, "" when the student has no record.
type TopicStatuses struct {
	TopicID   uint            `json:"topic_id"`
	TopicName string          `json:"topic_name"`
	Order     int             `json:"order"`
	Statuses  map[uint]string `json:"statuses"`
}

type AttendancePhaseSummary struct {
	Phase    string                     `json:"phase"`
	Topics   []TopicStatuses            `json:"topics"`
	Students map[uint]*AttendanceTotals `json:"students"`
}

// TrainingAttendanceSummary is the three-level fold: training → phase →
// topic/student, with per-student running totals at both levels.
type TrainingAttendanceSummary struct {
	TrainingID   uint                       `json:"training_id"`
	TrainingName string                     `json:"training_name"`
	StudentList  []StudentRef               `json:"student_list"`
	Phases       []AttendancePhaseSummary   `json:"phases"`
	Students     map[uint]*AttendanceTotals `json:"students"`
}

type ProgressPhaseSummary struct {
	Phase    string                   `json:"phase"`
	Topics   []TopicStatuses          `json:"topics"`
	Students map[uint]*ProgressTotals `json:"students"`
}

type TrainingProgressSummary struct {
	TrainingID   uint                     `json:"training_id"`
	TrainingName string                   `json:"training_name"`
	StudentList  []StudentRef             `json:"student_list"`
	Phases       []ProgressPhaseSummary   `json:"phases"`
	Students     map[uint]*ProgressTotals `json:"students"`
}

// AttendanceOverviewEntry is the flat dashboard row: every attendance row
// the student has, regardless of topic.
type AttendanceOverviewEntry struct {
	Present    int `json:"present"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ProgressOverviewEntry is the flat dashboard row: completed topics over
// the whole curriculum.
type ProgressOverviewEntry struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// StudentProfile is the per-student statistics block. Rates are over the
// union of topics the student's attendance or progress rows touch.
type StudentProfile struct {
	StudentID      uint   `json:"student_id"`
	StudentName    string `json:"student_name"`
	TopicsTouched  int    `json:"topics_touched"`
	TrainingsCount int    `json:"trainings_count"`
	TrainingIDs    []uint `json:"training_ids"`
	AttendanceRate int    `json:"attendance_rate"`
	CompletionRate int    `json:"completion_rate"`
	SkillsTracked  int    `json:"skills_tracked"`
}
