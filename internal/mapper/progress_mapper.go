package mapper

import (
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) AttemptToEntity(a *model.QuestionAttempt) *entity.QuestionAttempt {
	if a == nil {
		return nil
	}
	return &entity.QuestionAttempt{
		Id:         a.Id,
		EmployeeId: a.EmployeeId,
		TopicId:    a.TopicId,
		QuestionId: a.QuestionId,
		SessionId:  a.SessionId,
		IsCorrect:  a.IsCorrect,
		AnswerText: a.AnswerText,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ProgressMapper) AttemptToModel(a *entity.QuestionAttempt) *model.QuestionAttempt {
	if a == nil {
		return nil
	}
	return &model.QuestionAttempt{
		Id:         a.Id,
		EmployeeId: a.EmployeeId,
		TopicId:    a.TopicId,
		QuestionId: a.QuestionId,
		SessionId:  a.SessionId,
		IsCorrect:  a.IsCorrect,
		AnswerText: a.AnswerText,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *ProgressMapper) AttemptsToEntities(attempts []*model.QuestionAttempt) []*entity.QuestionAttempt {
	entities := make([]*entity.QuestionAttempt, len(attempts))
	for i, a := range attempts {
		entities[i] = m.AttemptToEntity(a)
	}
	return entities
}

func (m *ProgressMapper) ProgressToEntity(p *model.EmployeeTopicProgress) *entity.TopicProgress {
	if p == nil {
		return nil
	}
	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}
	return &entity.TopicProgress{
		Id:              p.Id,
		EmployeeId:      p.EmployeeId,
		TopicId:         p.TopicId,
		TotalAttempts:   p.TotalAttempts,
		CorrectAttempts: p.CorrectAttempts,
		MasteredAt:      p.MasteredAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProgressMapper) ProgressToModel(p *entity.TopicProgress) *model.EmployeeTopicProgress {
	if p == nil {
		return nil
	}
	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}
	return &model.EmployeeTopicProgress{
		Id:              p.Id,
		EmployeeId:      p.EmployeeId,
		TopicId:         p.TopicId,
		TotalAttempts:   p.TotalAttempts,
		CorrectAttempts: p.CorrectAttempts,
		MasteredAt:      p.MasteredAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ProgressMapper) ProgressListToEntities(list []*model.EmployeeTopicProgress) []*entity.TopicProgress {
	entities := make([]*entity.TopicProgress, len(list))
	for i, p := range list {
		entities[i] = m.ProgressToEntity(p)
	}
	return entities
}
