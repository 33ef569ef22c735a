package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CompanySettings struct {
	Id                uuid.UUID
	CompanyId         uuid.UUID
	DefaultLanguage   string
	VoiceAgentId      string
	AssessmentEnabled bool
	Metadata          json.RawMessage
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type RecommendationQuestion struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	Question     string
	DisplayOrder int
	CreatedAt    time.Time
}
