package dto

import (
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	Id           uuid.UUID  `json:"id" validate:"required"`
	EmployeeId   uuid.UUID  `json:"employee_id" validate:"required"`
	CompanyId    uuid.UUID  `json:"company_id" validate:"required"`
	AssignmentId *uuid.UUID `json:"assignment_id"`
	ScenarioId   *uuid.UUID `json:"scenario_id"`
	TrainingMode string     `json:"training_mode" validate:"required,oneof=theory service_practice recommendation_tts"`
	Language     string     `json:"language"`
	AgentId      string     `json:"agent_id"`
}

type StartSessionResponse struct {
	Id      uuid.UUID `json:"id"`
	Created bool      `json:"created"`
}

type SaveSessionRequest struct {
	Id                     uuid.UUID               `json:"id" validate:"required"`
	EmployeeId             uuid.UUID               `json:"employee_id" validate:"required"`
	CompanyId              uuid.UUID               `json:"company_id" validate:"required"`
	AssignmentId           *uuid.UUID              `json:"assignment_id"`
	ScenarioId             *uuid.UUID              `json:"scenario_id"`
	TrainingMode           string                  `json:"training_mode" validate:"required,oneof=theory service_practice recommendation_tts"`
	Language               string                  `json:"language"`
	AgentId                string                  `json:"agent_id"`
	ConversationId         *string                 `json:"conversation_id"`
	StartedAt              time.Time               `json:"started_at"`
	EndedAt                time.Time               `json:"ended_at"`
	SessionDurationSeconds int                     `json:"session_duration_seconds"`
	Transcript             []entity.TranscriptTurn `json:"conversation_transcript"`
	AudioURL               *string                 `json:"audio_url"`
	VideoURL               *string                 `json:"video_url"`
}

type SessionResponse struct {
	Id                     uuid.UUID               `json:"id"`
	EmployeeId             uuid.UUID               `json:"employee_id"`
	CompanyId              uuid.UUID               `json:"company_id"`
	AssignmentId           *uuid.UUID              `json:"assignment_id,omitempty"`
	ScenarioId             *uuid.UUID              `json:"scenario_id,omitempty"`
	TrainingMode           string                  `json:"training_mode"`
	Language               string                  `json:"language,omitempty"`
	AgentId                string                  `json:"agent_id,omitempty"`
	ConversationId         *string                 `json:"conversation_id,omitempty"`
	StartedAt              time.Time               `json:"started_at"`
	EndedAt                time.Time               `json:"ended_at"`
	SessionDurationSeconds int                     `json:"session_duration_seconds"`
	Transcript             []entity.TranscriptTurn `json:"conversation_transcript"`
	AudioURL               *string                 `json:"audio_url,omitempty"`
	VideoURL               *string                 `json:"video_url,omitempty"`
	AssessmentResult       json.RawMessage         `json:"assessment_result,omitempty"`
	AssessmentStatus       *string                 `json:"assessment_status,omitempty"`
	ProcessedExchanges     int                     `json:"processed_exchanges"`
	AssessedAt             *time.Time              `json:"assessed_at,omitempty"`
	CreatedAt              time.Time               `json:"created_at"`
}

type AnalyzeSessionResponse struct {
	SessionId          uuid.UUID       `json:"session_id"`
	Status             string          `json:"status"`
	Result             json.RawMessage `json:"result,omitempty"`
	ProcessedExchanges int             `json:"processed_exchanges"`
	Cached             bool            `json:"cached"`
	Warnings           []string        `json:"warnings,omitempty"`
}
