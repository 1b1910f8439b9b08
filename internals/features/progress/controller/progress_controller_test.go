package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub_backend/internals/constants"
	progressModel "traininghub_backend/internals/features/progress/model"
	progressRoute "traininghub_backend/internals/features/progress/route"
	reportDto "traininghub_backend/internals/features/reports/dto"
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	"traininghub_backend/internals/testutils"
)

func TestUpsertProgressIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	progressRoute.ProgressRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)

	body := map[string]interface{}{
		"student_id": 1,
		"topic_id":   1,
		"status":     constants.ProgressInProgress,
	}
	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/progress", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body["status"] = constants.ProgressCompleted
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/progress", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []progressModel.ProgressModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, constants.ProgressCompleted, rows[0].Status)
}

func TestBulkUpsertProgress(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	progressRoute.ProgressRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Badr"}).Error)

	body := map[string]interface{}{
		"topic_id": 1,
		"entries": []map[string]interface{}{
			{"student_id": 1, "status": constants.ProgressCompleted},
			{"student_id": 2, "status": constants.ProgressNotStarted},
		},
	}
	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/progress/bulk", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Resubmitting the same form must not fork duplicates.
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/progress/bulk", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&progressModel.ProgressModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestUpsertProgressRejectsUnknownStatus(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	progressRoute.ProgressRoutes(app.Group("/api"), db)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/progress",
		map[string]interface{}{"student_id": 1, "topic_id": 1, "status": "Done"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProgressSummaryCountsWholeCurriculum(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	progressRoute.ProgressRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	for i, name := range []string{"Intro", "HTTP", "Selenium", "Reporting"} {
		require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: name, Order: i}).Error)
	}
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)
	require.NoError(t, db.Create(&progressModel.ProgressModel{
		StudentID: 1, TopicID: 1, Status: constants.ProgressCompleted,
	}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/progress/summary", nil, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview map[uint]reportDto.ProgressOverviewEntry
	env.DataAs(t, &overview)
	require.Contains(t, overview, uint(1))
	assert.Equal(t, 1, overview[1].Completed)
	assert.Equal(t, 4, overview[1].Total)
	assert.Equal(t, 25, overview[1].Percentage)
}
