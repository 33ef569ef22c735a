package mapper

import (
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ScenarioMapper struct{}

func NewScenarioMapper() *ScenarioMapper {
	return &ScenarioMapper{}
}

func idsFromJSON(raw datatypes.JSON) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var ids []uuid.UUID
	_ = json.Unmarshal(raw, &ids)
	return ids
}

func idsToJSON(ids []uuid.UUID) datatypes.JSON {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	b, _ := json.Marshal(ids)
	return datatypes.JSON(b)
}

func (m *ScenarioMapper) ToEntity(s *model.Scenario) *entity.Scenario {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Scenario{
		Id:           s.Id,
		CompanyId:    s.CompanyId,
		Title:        s.Title,
		Type:         entity.ScenarioType(s.Type),
		Description:  s.Description,
		DocumentIds:  idsFromJSON(s.DocumentIds),
		TopicIds:     idsFromJSON(s.TopicIds),
		TrackId:      s.TrackId,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *ScenarioMapper) ToModel(s *entity.Scenario) *model.Scenario {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Scenario{
		Id:           s.Id,
		CompanyId:    s.CompanyId,
		Title:        s.Title,
		Type:         string(s.Type),
		Description:  s.Description,
		DocumentIds:  idsToJSON(s.DocumentIds),
		TopicIds:     idsToJSON(s.TopicIds),
		TrackId:      s.TrackId,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *ScenarioMapper) ToEntities(scenarios []*model.Scenario) []*entity.Scenario {
	entities := make([]*entity.Scenario, len(scenarios))
	for i, s := range scenarios {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *ScenarioMapper) AssignmentToEntity(a *model.ScenarioAssignment) *entity.ScenarioAssignment {
	if a == nil {
		return nil
	}
	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}
	return &entity.ScenarioAssignment{
		Id:         a.Id,
		ScenarioId: a.ScenarioId,
		EmployeeId: a.EmployeeId,
		AssignedBy: a.AssignedBy,
		Status:     entity.AssignmentStatus(a.Status),
		DueAt:      a.DueAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ScenarioMapper) AssignmentToModel(a *entity.ScenarioAssignment) *model.ScenarioAssignment {
	if a == nil {
		return nil
	}
	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}
	return &model.ScenarioAssignment{
		Id:         a.Id,
		ScenarioId: a.ScenarioId,
		EmployeeId: a.EmployeeId,
		AssignedBy: a.AssignedBy,
		Status:     string(a.Status),
		DueAt:      a.DueAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *ScenarioMapper) AssignmentsToEntities(assignments []*model.ScenarioAssignment) []*entity.ScenarioAssignment {
	entities := make([]*entity.ScenarioAssignment, len(assignments))
	for i, a := range assignments {
		entities[i] = m.AssignmentToEntity(a)
	}
	return entities
}
