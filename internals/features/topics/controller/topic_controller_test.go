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
	studentModel "traininghub_backend/internals/features/students/model"
	topicModel "traininghub_backend/internals/features/topics/model"
	topicRoute "traininghub_backend/internals/features/topics/route"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	"traininghub_backend/internals/testutils"
)

func TestCreateTopicRequiresTraining(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	topicRoute.TopicRoutes(app.Group("/api"), db)

	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/topics",
		map[string]interface{}{"training_id": 9, "name": "Intro"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)

	var env testutils.Envelope
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/topics",
		map[string]interface{}{"training_id": 1, "name": "Intro", "phase": "Foundation"}, &env)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var topic topicModel.TopicModel
	env.DataAs(t, &topic)
	assert.Equal(t, uint(1), topic.TrainingID)
	assert.Equal(t, "Foundation", topic.Phase)
}

func TestListTopicsFiltersByTraining(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	topicRoute.TopicRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "Automation", Slug: "automation"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro", Order: 1}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "HTTP", Order: 0}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 2, Name: "Selenium", Order: 0}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/topics/?training_id=1", nil, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var topics []topicModel.TopicModel
	env.DataAs(t, &topics)
	require.Len(t, topics, 2)
	// Display order, not insertion order.
	assert.Equal(t, "HTTP", topics[0].Name)
	assert.Equal(t, "Intro", topics[1].Name)
}

func TestDeleteTopicCascadesRecords(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	topicRoute.TopicRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "HTTP", Order: 1}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for topicID := uint(1); topicID <= 2; topicID++ {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
			StudentID: 1, TopicID: topicID, Date: day, Status: constants.AttendancePresent,
		}).Error)
		require.NoError(t, db.Create(&progressModel.ProgressModel{
			StudentID: 1, TopicID: topicID, Status: constants.ProgressInProgress,
		}).Error)
	}

	resp := testutils.DoJSON(t, app, http.MethodDelete, "/api/topics/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var attendance, progress int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).Count(&attendance).Error)
	require.NoError(t, db.Model(&progressModel.ProgressModel{}).Count(&progress).Error)
	assert.Equal(t, int64(1), attendance)
	assert.Equal(t, int64(1), progress)

	var survivor attendanceModel.AttendanceModel
	require.NoError(t, db.First(&survivor).Error)
	assert.Equal(t, uint(2), survivor.TopicID)
}
