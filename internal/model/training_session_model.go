package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrainingSession rows are keyed by a client-supplied id so that session
// start is an idempotent insert and session save is a plain PK upsert.
// No default on the primary key on purpose.
type TrainingSession struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EmployeeId             uuid.UUID      `gorm:"type:uuid;not null;index"`
	CompanyId              uuid.UUID      `gorm:"type:uuid;not null;index"`
	AssignmentId           *uuid.UUID     `gorm:"type:uuid;index"`
	ScenarioId             *uuid.UUID     `gorm:"type:uuid;index"`
	TrainingMode           string         `gorm:"type:varchar(30);not null"`
	Language               string         `gorm:"type:varchar(10)"`
	AgentId                string         `gorm:"type:varchar(100)"`
	ConversationId         *string        `gorm:"type:varchar(100);index"`
	StartedAt              time.Time      `gorm:"not null"`
	EndedAt                time.Time      `gorm:"not null"`
	SessionDurationSeconds int            `gorm:"not null;default:0"`
	Transcript             datatypes.JSON `gorm:"type:jsonb"`
	AudioURL               *string        `gorm:"type:text"`
	VideoURL               *string        `gorm:"type:text"`
	AudioFileSize          int64          `gorm:"not null;default:0"`
	AssessmentResult       datatypes.JSON `gorm:"type:jsonb"`
	AssessmentStatus       *string        `gorm:"type:varchar(20);index"`
	ProcessedExchanges     int            `gorm:"not null;default:0"`
	AssessedAt             *time.Time
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
