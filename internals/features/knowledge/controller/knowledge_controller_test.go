package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub_backend/internals/constants"
	knowledgeModel "traininghub_backend/internals/features/knowledge/model"
	knowledgeRoute "traininghub_backend/internals/features/knowledge/route"
	studentModel "traininghub_backend/internals/features/students/model"
	"traininghub_backend/internals/testutils"
)

func TestCreateSkillAssignsNextOrder(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	for i, topic := range []string{"API - Postman", "API - Mocking"} {
		var env testutils.Envelope
		resp := testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/skills",
			map[string]interface{}{"topic": topic}, &env)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var skill knowledgeModel.KnowledgeSkillModel
		env.DataAs(t, &skill)
		assert.Equal(t, i, skill.Order)
		assert.True(t, skill.IsActive)
	}
}

func TestCreateSkillRejectsDuplicateAndReactivatesDeleted(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	body := map[string]interface{}{"topic": "Robot Framework"}
	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/skills", body, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// An active duplicate is a conflict.
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/skills", body, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// A soft-deleted topic comes back instead of duplicating.
	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/knowledge/skills/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env testutils.Envelope
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/skills", body, &env)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&knowledgeModel.KnowledgeSkillModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var skill knowledgeModel.KnowledgeSkillModel
	require.NoError(t, db.First(&skill, 1).Error)
	assert.True(t, skill.IsActive)
}

func TestRenameSkillCascadesToAssessments(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&knowledgeModel.KnowledgeSkillModel{Topic: "Python", IsActive: true}).Error)
	require.NoError(t, db.Create(&knowledgeModel.KnowledgeSkillModel{Topic: "Java", Order: 1, IsActive: true}).Error)
	for i := 1; i <= 3; i++ {
		require.NoError(t, db.Create(&studentModel.StudentModel{Name: fmt.Sprintf("S%d", i)}).Error)
		require.NoError(t, db.Create(&knowledgeModel.KnowledgeAssessmentModel{
			StudentID:        uint(i),
			Topic:            "Python",
			ProficiencyLevel: constants.ProficiencyBeginner,
		}).Error)
	}
	require.NoError(t, db.Create(&knowledgeModel.KnowledgeAssessmentModel{
		StudentID:        1,
		Topic:            "Java",
		ProficiencyLevel: constants.ProficiencyExpert,
	}).Error)

	var env testutils.Envelope
	resp := testutils.DoJSON(t, app, http.MethodPut, "/api/knowledge/skills/1",
		map[string]interface{}{"topic": "Python - Testing"}, &env)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Skill                 knowledgeModel.KnowledgeSkillModel `json:"skill"`
		AssessmentsReassigned int64                              `json:"assessments_reassigned"`
	}
	env.DataAs(t, &payload)
	assert.Equal(t, "Python - Testing", payload.Skill.Topic)
	assert.Equal(t, int64(3), payload.AssessmentsReassigned)

	var stale int64
	require.NoError(t, db.Model(&knowledgeModel.KnowledgeAssessmentModel{}).
		Where("topic = ?", "Python").Count(&stale).Error)
	assert.Equal(t, int64(0), stale)

	var moved int64
	require.NoError(t, db.Model(&knowledgeModel.KnowledgeAssessmentModel{}).
		Where("topic = ?", "Python - Testing").Count(&moved).Error)
	assert.Equal(t, int64(3), moved)

	// The unrelated topic is untouched.
	var java int64
	require.NoError(t, db.Model(&knowledgeModel.KnowledgeAssessmentModel{}).
		Where("topic = ?", "Java").Count(&java).Error)
	assert.Equal(t, int64(1), java)
}

func TestRenameSkillRejectsExistingTopic(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&knowledgeModel.KnowledgeSkillModel{Topic: "Python", IsActive: true}).Error)
	require.NoError(t, db.Create(&knowledgeModel.KnowledgeSkillModel{Topic: "Java", Order: 1, IsActive: true}).Error)

	resp := testutils.DoJSON(t, app, http.MethodPut, "/api/knowledge/skills/1",
		map[string]interface{}{"topic": "Java"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpsertAssessmentIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)

	body := map[string]interface{}{
		"student_id":        1,
		"topic":             "Python",
		"proficiency_level": constants.ProficiencyBeginner,
	}
	resp := testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/assessments", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body["proficiency_level"] = constants.ProficiencyAdvance
	resp = testutils.DoJSON(t, app, http.MethodPost, "/api/knowledge/assessments", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []knowledgeModel.KnowledgeAssessmentModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, constants.ProficiencyAdvance, rows[0].ProficiencyLevel)
	assert.False(t, rows[0].LastUpdated.IsZero())
}

func TestDeleteAssessment(t *testing.T) {
	db := testutils.NewTestDB(t)
	app := testutils.NewTestApp()
	knowledgeRoute.KnowledgeRoutes(app.Group("/api"), db)

	require.NoError(t, db.Create(&studentModel.StudentModel{Name: "Amal"}).Error)
	require.NoError(t, db.Create(&knowledgeModel.KnowledgeAssessmentModel{
		StudentID:        1,
		Topic:            "Python",
		ProficiencyLevel: constants.ProficiencyBeginner,
	}).Error)

	resp := testutils.DoJSON(t, app, http.MethodDelete, "/api/knowledge/assessments/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutils.DoJSON(t, app, http.MethodDelete, "/api/knowledge/assessments/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
