package mapper

import (
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) DocumentToEntity(d *model.KnowledgeDocument) *entity.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeDocument{
		Id:        d.Id,
		CompanyId: d.CompanyId,
		Title:     d.Title,
		Content:   d.Content,
		FileURL:   d.FileURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *KnowledgeMapper) DocumentToModel(d *entity.KnowledgeDocument) *model.KnowledgeDocument {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.KnowledgeDocument{
		Id:        d.Id,
		CompanyId: d.CompanyId,
		Title:     d.Title,
		Content:   d.Content,
		FileURL:   d.FileURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *KnowledgeMapper) DocumentsToEntities(docs []*model.KnowledgeDocument) []*entity.KnowledgeDocument {
	entities := make([]*entity.KnowledgeDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}

func (m *KnowledgeMapper) TopicToEntity(t *model.KnowledgeTopic) *entity.KnowledgeTopic {
	if t == nil {
		return nil
	}
	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}
	return &entity.KnowledgeTopic{
		Id:           t.Id,
		CompanyId:    t.CompanyId,
		Name:         t.Name,
		DocumentId:   t.DocumentId,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *KnowledgeMapper) TopicToModel(t *entity.KnowledgeTopic) *model.KnowledgeTopic {
	if t == nil {
		return nil
	}
	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}
	return &model.KnowledgeTopic{
		Id:           t.Id,
		CompanyId:    t.CompanyId,
		Name:         t.Name,
		DocumentId:   t.DocumentId,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *KnowledgeMapper) TopicsToEntities(topics []*model.KnowledgeTopic) []*entity.KnowledgeTopic {
	entities := make([]*entity.KnowledgeTopic, len(topics))
	for i, t := range topics {
		entities[i] = m.TopicToEntity(t)
	}
	return entities
}

func (m *KnowledgeMapper) QuestionToEntity(q *model.TopicQuestion) *entity.TopicQuestion {
	if q == nil {
		return nil
	}

	var options []string
	if len(q.Options) > 0 {
		_ = json.Unmarshal(q.Options, &options)
	}

	return &entity.TopicQuestion{
		Id:            q.Id,
		TopicId:       q.TopicId,
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		Options:       options,
		Difficulty:    q.Difficulty,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *KnowledgeMapper) QuestionToModel(q *entity.TopicQuestion) *model.TopicQuestion {
	if q == nil {
		return nil
	}

	options := datatypes.JSON("[]")
	if q.Options != nil {
		if b, err := json.Marshal(q.Options); err == nil {
			options = datatypes.JSON(b)
		}
	}

	return &model.TopicQuestion{
		Id:            q.Id,
		TopicId:       q.TopicId,
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		Options:       options,
		Difficulty:    q.Difficulty,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *KnowledgeMapper) QuestionsToEntities(questions []*model.TopicQuestion) []*entity.TopicQuestion {
	entities := make([]*entity.TopicQuestion, len(questions))
	for i, q := range questions {
		entities[i] = m.QuestionToEntity(q)
	}
	return entities
}

func (m *KnowledgeMapper) ChunkToEntity(c *model.DocumentEmbedding) *entity.DocumentChunk {
	if c == nil {
		return nil
	}
	return &entity.DocumentChunk{
		Id:         c.Id,
		DocumentId: c.DocumentId,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *KnowledgeMapper) ChunkToModel(c *entity.DocumentChunk) *model.DocumentEmbedding {
	if c == nil {
		return nil
	}
	return &model.DocumentEmbedding{
		Id:         c.Id,
		DocumentId: c.DocumentId,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}
