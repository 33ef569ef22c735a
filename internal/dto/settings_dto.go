package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UpsertSettingsRequest struct {
	DefaultLanguage   string          `json:"default_language"`
	VoiceAgentId      string          `json:"voice_agent_id"`
	AssessmentEnabled bool            `json:"assessment_enabled"`
	Metadata          json.RawMessage `json:"metadata"`
}

type SettingsResponse struct {
	CompanyId         uuid.UUID       `json:"company_id"`
	DefaultLanguage   string          `json:"default_language"`
	VoiceAgentId      string          `json:"voice_agent_id"`
	AssessmentEnabled bool            `json:"assessment_enabled"`
	Metadata          json.RawMessage `json:"metadata,omitempty"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

type CreateRecommendationQuestionRequest struct {
	Question     string `json:"question" validate:"required"`
	DisplayOrder int    `json:"display_order"`
}

type RecommendationQuestionResponse struct {
	Id           uuid.UUID `json:"id"`
	CompanyId    uuid.UUID `json:"company_id"`
	Question     string    `json:"question"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
