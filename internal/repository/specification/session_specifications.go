package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByConversationID struct {
	ConversationID string
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

type ByEmployeeID struct {
	EmployeeID uuid.UUID
}

func (s ByEmployeeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_id = ?", s.EmployeeID)
}

type ByScenarioID struct {
	ScenarioID uuid.UUID
}

func (s ByScenarioID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scenario_id = ?", s.ScenarioID)
}

type ByTrainingMode struct {
	Mode string
}

func (s ByTrainingMode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("training_mode = ?", s.Mode)
}

type ByAssessmentStatus struct {
	Status string
}

func (s ByAssessmentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assessment_status = ?", s.Status)
}
