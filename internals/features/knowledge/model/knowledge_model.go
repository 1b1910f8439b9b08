package model

import "time"

// KnowledgeSkillModel defines an assessable skill. The topic string is the
// identity assessments match against, so renaming a skill must rewrite
// every assessment carrying the old string (see the skills controller).
// Soft delete via is_active; re-creating a deleted topic reactivates it.
type KnowledgeSkillModel struct {
	ID        uint      `json:"id" gorm:"column:id;primaryKey"`
	Topic     string    `json:"topic" gorm:"column:topic;size:200;not null;uniqueIndex:uq_knowledge_skill_topic"`
	Order     int       `json:"order" gorm:"column:order;default:0"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (KnowledgeSkillModel) TableName() string {
	return "knowledge_skill"
}

// KnowledgeAssessmentModel is a student's self/assessor-rated proficiency
// for a skill topic. (student_id, topic) is the upsert key; last_updated
// refreshes on every write.
type KnowledgeAssessmentModel struct {
	ID               uint      `json:"id" gorm:"column:id;primaryKey"`
	StudentID        uint      `json:"student_id" gorm:"column:student_id;not null;uniqueIndex:uq_knowledge_assessment_student_topic"`
	Topic            string    `json:"topic" gorm:"column:topic;size:200;not null;uniqueIndex:uq_knowledge_assessment_student_topic"`
	ProficiencyLevel string    `json:"proficiency_level" gorm:"column:proficiency_level;size:50;not null"`
	LastUpdated      time.Time `json:"last_updated" gorm:"column:last_updated;autoUpdateTime"`
}

func (KnowledgeAssessmentModel) TableName() string {
	return "knowledge_assessment"
}
