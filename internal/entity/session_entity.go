package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TrainingMode string

const (
	TrainingModeTheory            TrainingMode = "theory"
	TrainingModeServicePractice   TrainingMode = "service_practice"
	TrainingModeRecommendationTTS TrainingMode = "recommendation_tts"
)

type AssessmentStatus string

const (
	AssessmentStatusPending   AssessmentStatus = "pending"
	AssessmentStatusCompleted AssessmentStatus = "completed"
	AssessmentStatusFailed    AssessmentStatus = "failed"
)

// TranscriptTurn is one utterance of a training conversation.
// Timestamp is milliseconds relative to conversation start.
type TranscriptTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

const (
	TranscriptRoleUser      = "user"
	TranscriptRoleAssistant = "assistant"
)

type TrainingSession struct {
	Id                     uuid.UUID
	EmployeeId             uuid.UUID
	CompanyId              uuid.UUID
	AssignmentId           *uuid.UUID
	ScenarioId             *uuid.UUID
	TrainingMode           TrainingMode
	Language               string
	AgentId                string
	ConversationId         *string
	StartedAt              time.Time
	EndedAt                time.Time
	SessionDurationSeconds int
	Transcript             []TranscriptTurn
	AudioURL               *string
	VideoURL               *string
	AudioFileSize          int64
	AssessmentResult       json.RawMessage
	AssessmentStatus       *AssessmentStatus
	ProcessedExchanges     int
	AssessedAt             *time.Time
	CreatedAt              time.Time
	UpdatedAt              *time.Time
}

// HasCompletedAssessment reports whether a reusable assessment is cached on the row.
func (s *TrainingSession) HasCompletedAssessment() bool {
	return s.AssessmentStatus != nil &&
		*s.AssessmentStatus == AssessmentStatusCompleted &&
		len(s.AssessmentResult) > 0
}
