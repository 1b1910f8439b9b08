package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub_backend/internals/constants"
	attendanceModel "traininghub_backend/internals/features/attendance/model"
	certificateModel "traininghub_backend/internals/features/certificates/model"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	progressModel "traininghub_backend/internals/features/progress/model"
	reportDto "traininghub_backend/internals/features/reports/dto"
	studentModel "traininghub_backend/internals/features/students/model"
	studentRoute "traininghub_backend/internals/features/students/route"
	topicModel "traininghub_backend/internals/features/topics/model"
	trainingModel "traininghub_backend/internals/features/trainings/model"
	"traininghub_backend/internals/testutils"
)

func TestDeleteStudentRemovesAllRecords(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	studentRoute.StudentRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: "Intro"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Badr"}).Error)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for sid := uint(1); sid <= 2; sid++ {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
			StudentID: sid, TopicID: 1, Date: day, Status: constants.AttendancePresent,
		}).Error)
		require.NoError(t, db.Create(&progressModel.ProgressModel{
			StudentID: sid, TopicID: 1, Status: constants.ProgressCompleted,
		}).Error)
		require.NoError(t, db.Create(&knowledgeModel.KnowledgeAssessmentModel{
			StudentID: sid, Topic: "Python", ProficiencyLevel: constants.ProficiencyBeginner,
		}).Error)
		require.NoError(t, db.Create(&certificateModel.CertificateModel{
			StudentID: sid, Title: "Certificate of Completion",
		}).Error)
	}

	resp := testutils.DoJSON(t, app, http.MethodDelete, "/api/students/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var students int64
	require.NoError(t, db.Model(&studentModel.StudentModel{}).Count(&students).Error)
	assert.Equal(t, int64(1), students)

	// Only the surviving student's rows remain.
	for _, dest := range []interface{}{
		&attendanceModel.AttendanceModel{},
		&progressModel.ProgressModel{},
		&knowledgeModel.KnowledgeAssessmentModel{},
		&certificateModel.CertificateModel{},
	} {
		var total, orphaned int64
		require.NoError(t, db.Model(dest).Count(&total).Error)
		require.NoError(t, db.Model(dest).Where("student_id = ?", 1).Count(&orphaned).Error)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, int64(0), orphaned)
	}

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/students/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStudentProfileRates(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	studentRoute.StudentRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&trainingModel.TrainingModel{Name: "QA Basics", Slug: "qa-basics"}).Error)
	for _, name := range []string{"Intro", "HTTP", "Selenium"} {
		require.NoError(t, db.Create(&topicModel.TopicModel{TrainingID: 1, Name: name}).Error)
	}
	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	statuses := []string{constants.AttendancePresent, constants.AttendancePresent, constants.AttendanceAbsent}
	for i, st := range statuses {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
			StudentID: 1, TopicID: uint(i + 1), Date: day, Status: st,
		}).Error)
	}
	require.NoError(t, db.Create(&progressModel.ProgressModel{
		StudentID: 1, TopicID: 1, Status: constants.ProgressCompleted,
	}).Error)
	require.NoError(t, db.Create(&knowledgeModel.KnowledgeAssessmentModel{
		StudentID: 1, Topic: "Python", ProficiencyLevel: constants.ProficiencyBeginner,
	}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/students/1/profile", nil, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile reportDto.StudentProfile
	env.DataAs(t, &profile)
	assert.Equal(t, "Amal", profile.StudentName)
	assert.Equal(t, 3, profile.TopicsTouched)
	assert.Equal(t, 1, profile.TrainingsCount)
	assert.Equal(t, []uint{1}, profile.TrainingIDs)
	assert.Equal(t, 66, profile.AttendanceRate)
	assert.Equal(t, 33, profile.CompletionRate)
	assert.Equal(t, 1, profile.SkillsTracked)
}

func TestGetStudentNotFound(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	studentRoute.StudentRoutes(app.Group("/api"), db)

	resp := testutils.DoJSON(t, app, http.MethodGet, "/api/students/42", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
