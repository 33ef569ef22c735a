package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CompanySettings struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	DefaultLanguage   string         `gorm:"type:varchar(10);not null;default:'en'"`
	VoiceAgentId      string         `gorm:"type:varchar(100)"`
	AssessmentEnabled bool           `gorm:"not null;default:true"`
	Metadata          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (CompanySettings) TableName() string {
	return "company_settings"
}

type RecommendationQuestion struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Question     string    `gorm:"type:text;not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (RecommendationQuestion) TableName() string {
	return "recommendation_questions"
}
