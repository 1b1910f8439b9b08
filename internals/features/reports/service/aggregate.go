package service

import (
	"sort"

	"traininghub_backend/internals/constants"
	attendanceModel "traininghub_backend/internals/features/attendance/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	"traininghub_backend/internals/features/reports/dto"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
)

// The fold functions here are pure: callers materialize the rows, these
// functions only group and count. Worst case is O(topics × students) per
// training, which is fine at single-organization scale.

type pairKey struct {
	studentID uint
	topicID   uint
}

// latestAttendanceByPair reduces attendance rows to the current status per
// (student, topic): the row with the maximum date wins, ties broken by the
// higher id (the later insert).
func latestAttendanceByPair(rows []attendanceModel.AttendanceModel) map[pairKey]attendanceModel.AttendanceModel {
	latest := make(map[pairKey]attendanceModel.AttendanceModel)
	for _, row := range rows {
		key := pairKey{row.StudentID, row.TopicID}
		cur, ok := latest[key]
		if !ok || row.Date.After(cur.Date) || (row.Date.Equal(cur.Date) && row.ID > cur.ID) {
			latest[key] = row
		}
	}
	return latest
}

// phaseOf applies the fallback bucket for topics without a phase.
func phaseOf(t *topicModel.TopicModel) string {
	if t.Phase == "" {
		return constants.PhaseFallback
	}
	return t.Phase
}

func studentRefs(students []studentModel.StudentModel) []dto.StudentRef {
	refs := make([]dto.StudentRef, 0, len(students))
	for _, s := range students {
		refs = append(refs, dto.StudentRef{ID: s.ID, Name: s.Name})
	}
	return refs
}

func pct(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// BuildTrainingAttendanceSummary folds attendance rows into the
// training → phase → topic/student hierarchy. Topics must already be in
// display order; phases appear in first-seen topic order. Every
// (student, topic) pair counts toward the totals - a pair with no
// attendance row contributes to no status bucket but still raises Total,
// in this view and every other one.
func BuildTrainingAttendanceSummary(
	training *trainingModel.TrainingModel,
	topics []topicModel.TopicModel,
	students []studentModel.StudentModel,
	rows []attendanceModel.AttendanceModel,
) dto.TrainingAttendanceSummary {
	latest := latestAttendanceByPair(rows)

	summary := dto.TrainingAttendanceSummary{
		TrainingID:   training.ID,
		TrainingName: training.Name,
		StudentList:  studentRefs(students),
		Phases:       []dto.AttendancePhaseSummary{},
		Students:     make(map[uint]*dto.AttendanceTotals, len(students)),
	}
	for _, s := range students {
		summary.Students[s.ID] = &dto.AttendanceTotals{}
	}

	phaseIndex := make(map[string]int)
	for i := range topics {
		topic := &topics[i]
		phase := phaseOf(topic)
		pi, ok := phaseIndex[phase]
		if !ok {
			pi = len(summary.Phases)
			phaseIndex[phase] = pi
			ps := dto.AttendancePhaseSummary{
				Phase:    phase,
				Topics:   []dto.TopicStatuses{},
				Students: make(map[uint]*dto.AttendanceTotals, len(students)),
			}
			for _, s := range students {
				ps.Students[s.ID] = &dto.AttendanceTotals{}
			}
			summary.Phases = append(summary.Phases, ps)
		}

		entry := dto.TopicStatuses{
			TopicID:   topic.ID,
			TopicName: topic.Name,
			Order:     topic.Order,
			Statuses:  make(map[uint]string, len(students)),
		}
		for _, s := range students {
			status := ""
			if row, ok := latest[pairKey{s.ID, topic.ID}]; ok {
				status = row.Status
			}
			entry.Statuses[s.ID] = status

			phaseTotals := summary.Phases[pi].Students[s.ID]
			trainingTotals := summary.Students[s.ID]
			tallyAttendance(phaseTotals, status)
			tallyAttendance(trainingTotals, status)
		}
		summary.Phases[pi].Topics = append(summary.Phases[pi].Topics, entry)
	}

	for _, ps := range summary.Phases {
		for _, totals := range ps.Students {
			totals.Percentage = pct(totals.Present, totals.Total)
		}
	}
	for _, totals := range summary.Students {
		totals.Percentage = pct(totals.Present, totals.Total)
	}
	return summary
}

func tallyAttendance(t *dto.AttendanceTotals, status string) {
	t.Total++
	switch status {
	case constants.AttendancePresent:
		t.Present++
	case constants.AttendanceAbsent:
		t.Absent++
	case constants.AttendanceExcused:
		t.Excused++
	}
}

// BuildTrainingProgressSummary is the same fold for progress: the single
// (student, topic) row if present, else "Not Started", always counted.
func BuildTrainingProgressSummary(
	training *trainingModel.TrainingModel,
	topics []topicModel.TopicModel,
	students []studentModel.StudentModel,
	rows []progressModel.ProgressModel,
) dto.TrainingProgressSummary {
	byPair := make(map[pairKey]string, len(rows))
	for _, row := range rows {
		byPair[pairKey{row.StudentID, row.TopicID}] = row.Status
	}

	summary := dto.TrainingProgressSummary{
		TrainingID:   training.ID,
		TrainingName: training.Name,
		StudentList:  studentRefs(students),
		Phases:       []dto.ProgressPhaseSummary{},
		Students:     make(map[uint]*dto.ProgressTotals, len(students)),
	}
	for _, s := range students {
		summary.Students[s.ID] = &dto.ProgressTotals{}
	}

	phaseIndex := make(map[string]int)
	for i := range topics {
		topic := &topics[i]
		phase := phaseOf(topic)
		pi, ok := phaseIndex[phase]
		if !ok {
			pi = len(summary.Phases)
			phaseIndex[phase] = pi
			ps := dto.ProgressPhaseSummary{
				Phase:    phase,
				Topics:   []dto.TopicStatuses{},
				Students: make(map[uint]*dto.ProgressTotals, len(students)),
			}
			for _, s := range students {
				ps.Students[s.ID] = &dto.ProgressTotals{}
			}
			summary.Phases = append(summary.Phases, ps)
		}

		entry := dto.TopicStatuses{
			TopicID:   topic.ID,
			TopicName: topic.Name,
			Order:     topic.Order,
			Statuses:  make(map[uint]string, len(students)),
		}
		for _, s := range students {
			status, ok := byPair[pairKey{s.ID, topic.ID}]
			if !ok || status == "" {
				status = constants.ProgressNotStarted
			}
			entry.Statuses[s.ID] = status

			tallyProgress(summary.Phases[pi].Students[s.ID], status)
			tallyProgress(summary.Students[s.ID], status)
		}
		summary.Phases[pi].Topics = append(summary.Phases[pi].Topics, entry)
	}

	for _, ps := range summary.Phases {
		for _, totals := range ps.Students {
			totals.Percentage = pct(totals.Completed, totals.Total)
		}
	}
	for _, totals := range summary.Students {
		totals.Percentage = pct(totals.Completed, totals.Total)
	}
	return summary
}

func tallyProgress(t *dto.ProgressTotals, status string) {
	t.Total++
	switch status {
	case constants.ProgressCompleted:
		t.Completed++
	case constants.ProgressInProgress:
		t.InProgress++
	default:
		t.NotStarted++
	}
}

// BuildAttendanceOverview is the flat dashboard: per student, every
// attendance row counted, percentage of Present rows.
func BuildAttendanceOverview(
	students []studentModel.StudentModel,
	rows []attendanceModel.AttendanceModel,
) map[uint]dto.AttendanceOverviewEntry {
	present := make(map[uint]int)
	total := make(map[uint]int)
	for _, row := range rows {
		total[row.StudentID]++
		if row.Status == constants.AttendancePresent {
			present[row.StudentID]++
		}
	}

	out := make(map[uint]dto.AttendanceOverviewEntry, len(students))
	for _, s := range students {
		out[s.ID] = dto.AttendanceOverviewEntry{
			Present:    present[s.ID],
			Total:      total[s.ID],
			Percentage: pct(present[s.ID], total[s.ID]),
		}
	}
	return out
}

// BuildProgressOverview is the flat dashboard: completed topics over the
// total topic count across all trainings.
func BuildProgressOverview(
	students []studentModel.StudentModel,
	rows []progressModel.ProgressModel,
	totalTopics int,
) map[uint]dto.ProgressOverviewEntry {
	completed := make(map[uint]int)
	for _, row := range rows {
		if row.Status == constants.ProgressCompleted {
			completed[row.StudentID]++
		}
	}

	out := make(map[uint]dto.ProgressOverviewEntry, len(students))
	for _, s := range students {
		out[s.ID] = dto.ProgressOverviewEntry{
			Completed:  completed[s.ID],
			Total:      totalTopics,
			Percentage: pct(completed[s.ID], totalTopics),
		}
	}
	return out
}

// BuildStudentProfile computes the profile statistics block over the
// student's own rows. topicTrainings maps topic id → training id for every
// topic referenced by the rows; assessments is the student's knowledge
// assessment count.
func BuildStudentProfile(
	student *studentModel.StudentModel,
	attendanceRows []attendanceModel.AttendanceModel,
	progressRows []progressModel.ProgressModel,
	topicTrainings map[uint]uint,
	assessments int,
) dto.StudentProfile {
	touched := make(map[uint]bool)
	for _, row := range attendanceRows {
		touched[row.TopicID] = true
	}
	for _, row := range progressRows {
		touched[row.TopicID] = true
	}

	trainingSet := make(map[uint]bool)
	for topicID := range touched {
		if trainingID, ok := topicTrainings[topicID]; ok {
			trainingSet[trainingID] = true
		}
	}
	trainingIDs := make([]uint, 0, len(trainingSet))
	for id := range trainingSet {
		trainingIDs = append(trainingIDs, id)
	}
	sort.Slice(trainingIDs, func(i, j int) bool { return trainingIDs[i] < trainingIDs[j] })

	presentTopics := 0
	for _, row := range latestAttendanceByPair(attendanceRows) {
		if row.Status == constants.AttendancePresent {
			presentTopics++
		}
	}
	completedTopics := 0
	for _, row := range progressRows {
		if row.Status == constants.ProgressCompleted {
			completedTopics++
		}
	}

	return dto.StudentProfile{
		StudentID:      student.ID,
		StudentName:    student.Name,
		TopicsTouched:  len(touched),
		TrainingsCount: len(trainingSet),
		TrainingIDs:    trainingIDs,
		AttendanceRate: pct(presentTopics, len(touched)),
		CompletionRate: pct(completedTopics, len(touched)),
		SkillsTracked:  assessments,
	}
}
