package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub_backend/internals/constants"
	attendanceModel "traininghub_backend/internals/features/attendance/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	reportDto "traininghub_backend/internals/features/reports/dto"
	reportRoute "traininghub_backend/internals/features/reports/route"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	"traininghub_backend/internals/testutils"
)

func TestTrainingProgressReport(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	reportRoute.ReportRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro", Phase: "Foundation"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "HTTP", Phase: "Foundation", Order: 1}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)
	require.NoError(t, db.Create(&progressModel.ProgressModel{
		StudentID: 1, TopicID: 1, Status: constants.ProgressCompleted,
	}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/reports/trainings/1/progress", nil, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary reportDto.TrainingProgressSummary
	env.DataAs(t, &summary)
	assert.Equal(t, "QA Basics", summary.TrainingName)
	require.Len(t, summary.Phases, 1)
	assert.Equal(t, "Foundation", summary.Phases[0].Phase)

	// The topic with no row counts as Not Started.
	totals := summary.Students[1]
	require.NotNil(t, totals)
	assert.Equal(t, 1, totals.Completed)
	assert.Equal(t, 1, totals.NotStarted)
	assert.Equal(t, 2, totals.Total)
	assert.Equal(t, 50, totals.Percentage)

	statuses := summary.Phases[0].Topics[1].Statuses
	assert.Equal(t, constants.ProgressNotStarted, statuses[1])
}

func TestTrainingAttendanceReport(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	reportRoute.ReportRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)

	// Two rows for the same pair: the later date is the current status.
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		StudentID: 1, TopicID: 1,
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status: constants.AttendanceAbsent,
	}).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		StudentID: 1, TopicID: 1,
		Date:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		Status: constants.AttendancePresent,
	}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/reports/trainings/1/attendance", nil, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary reportDto.TrainingAttendanceSummary
	env.DataAs(t, &summary)
	require.Len(t, summary.Phases, 1)
	assert.Equal(t, constants.PhaseFallback, summary.Phases[0].Phase)

	totals := summary.Students[1]
	require.NotNil(t, totals)
	assert.Equal(t, 1, totals.Present)
	assert.Equal(t, 0, totals.Absent)
	assert.Equal(t, 100, totals.Percentage)
}

func TestTrainingReportUnknownTraining(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	reportRoute.ReportRoutes(app.Group("/api"), db)

	for _, target := range []string{
		"/api/reports/trainings/9/progress",
		"/api/reports/trainings/9/attendance",
	} {
		var env testutils.Envelope
		resp := testutils.DoJSON(t, app, http.MethodGet, target, nil, &env)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, "Training not found", env.Message)
	}
}
