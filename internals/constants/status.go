package constants

// Attendance statuses as stored in the attendance table.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceExcused = "Excused"
)

// Progress statuses as stored in the progress table.
const (
	ProgressNotStarted = "Not Started"
	ProgressInProgress = "In Progress"
	ProgressCompleted  = "Completed"
)

// Proficiency tiers for knowledge assessments, ordered Beginner < Intermediate < Advance < Expert.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvance      = "Advance"
	ProficiencyExpert       = "Expert"
)

// PhaseFallback buckets topics that carry no phase of their own.
const PhaseFallback = "Other"
