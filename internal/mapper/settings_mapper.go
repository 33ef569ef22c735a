package mapper

import (
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"

	"gorm.io/datatypes"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.CompanySettings) *entity.CompanySettings {
	if s == nil {
		return nil
	}
	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}
	return &entity.CompanySettings{
		Id:                s.Id,
		CompanyId:         s.CompanyId,
		DefaultLanguage:   s.DefaultLanguage,
		VoiceAgentId:      s.VoiceAgentId,
		AssessmentEnabled: s.AssessmentEnabled,
		Metadata:          json.RawMessage(s.Metadata),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.CompanySettings) *model.CompanySettings {
	if s == nil {
		return nil
	}
	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}
	return &model.CompanySettings{
		Id:                s.Id,
		CompanyId:         s.CompanyId,
		DefaultLanguage:   s.DefaultLanguage,
		VoiceAgentId:      s.VoiceAgentId,
		AssessmentEnabled: s.AssessmentEnabled,
		Metadata:          datatypes.JSON(s.Metadata),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *SettingsMapper) RecommendationToEntity(r *model.RecommendationQuestion) *entity.RecommendationQuestion {
	if r == nil {
		return nil
	}
	return &entity.RecommendationQuestion{
		Id:           r.Id,
		CompanyId:    r.CompanyId,
		Question:     r.Question,
		DisplayOrder: r.DisplayOrder,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *SettingsMapper) RecommendationToModel(r *entity.RecommendationQuestion) *model.RecommendationQuestion {
	if r == nil {
		return nil
	}
	return &model.RecommendationQuestion{
		Id:           r.Id,
		CompanyId:    r.CompanyId,
		Question:     r.Question,
		DisplayOrder: r.DisplayOrder,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *SettingsMapper) RecommendationsToEntities(list []*model.RecommendationQuestion) []*entity.RecommendationQuestion {
	entities := make([]*entity.RecommendationQuestion, len(list))
	for i, r := range list {
		entities[i] = m.RecommendationToEntity(r)
	}
	return entities
}
