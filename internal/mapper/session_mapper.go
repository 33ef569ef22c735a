package mapper

import (
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.TrainingSession) *entity.TrainingSession {
	if s == nil {
		return nil
	}

	var turns []entity.TranscriptTurn
	if len(s.Transcript) > 0 {
		// A corrupt blob degrades to an empty transcript rather than failing the read.
		_ = json.Unmarshal(s.Transcript, &turns)
	}

	var status *entity.AssessmentStatus
	if s.AssessmentStatus != nil {
		st := entity.AssessmentStatus(*s.AssessmentStatus)
		status = &st
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.TrainingSession{
		Id:                     s.Id,
		EmployeeId:             s.EmployeeId,
		CompanyId:              s.CompanyId,
		AssignmentId:           s.AssignmentId,
		ScenarioId:             s.ScenarioId,
		TrainingMode:           entity.TrainingMode(s.TrainingMode),
		Language:               s.Language,
		AgentId:                s.AgentId,
		ConversationId:         s.ConversationId,
		StartedAt:              s.StartedAt,
		EndedAt:                s.EndedAt,
		SessionDurationSeconds: s.SessionDurationSeconds,
		Transcript:             turns,
		AudioURL:               s.AudioURL,
		VideoURL:               s.VideoURL,
		AudioFileSize:          s.AudioFileSize,
		AssessmentResult:       json.RawMessage(s.AssessmentResult),
		AssessmentStatus:       status,
		ProcessedExchanges:     s.ProcessedExchanges,
		AssessedAt:             s.AssessedAt,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.TrainingSession) *model.TrainingSession {
	if s == nil {
		return nil
	}

	transcript := datatypes.JSON("[]")
	if s.Transcript != nil {
		if b, err := json.Marshal(s.Transcript); err == nil {
			transcript = datatypes.JSON(b)
		}
	}

	var status *string
	if s.AssessmentStatus != nil {
		st := string(*s.AssessmentStatus)
		status = &st
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.TrainingSession{
		Id:                     s.Id,
		EmployeeId:             s.EmployeeId,
		CompanyId:              s.CompanyId,
		AssignmentId:           s.AssignmentId,
		ScenarioId:             s.ScenarioId,
		TrainingMode:           string(s.TrainingMode),
		Language:               s.Language,
		AgentId:                s.AgentId,
		ConversationId:         s.ConversationId,
		StartedAt:              s.StartedAt,
		EndedAt:                s.EndedAt,
		SessionDurationSeconds: s.SessionDurationSeconds,
		Transcript:             transcript,
		AudioURL:               s.AudioURL,
		VideoURL:               s.VideoURL,
		AudioFileSize:          s.AudioFileSize,
		AssessmentResult:       datatypes.JSON(s.AssessmentResult),
		AssessmentStatus:       status,
		ProcessedExchanges:     s.ProcessedExchanges,
		AssessedAt:             s.AssessedAt,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              updatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.TrainingSession) []*entity.TrainingSession {
	entities := make([]*entity.TrainingSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
