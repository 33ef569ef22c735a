package contract

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.KnowledgeDocument) error
	Update(ctx context.Context, document *entity.KnowledgeDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDocument, error)
}

type TopicRepository interface {
	Create(ctx context.Context, topic *entity.KnowledgeTopic) error
	Update(ctx context.Context, topic *entity.KnowledgeTopic) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeTopic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeTopic, error)
}

type QuestionRepository interface {
	Create(ctx context.Context, question *entity.TopicQuestion) error
	CreateBatch(ctx context.Context, questions []*entity.TopicQuestion) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByTopicId(ctx context.Context, topicId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicQuestion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicQuestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type EmbeddingRepository interface {
	Create(ctx context.Context, chunk *entity.DocumentChunk) error
	CreateBatch(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteAllByDocumentId(ctx context.Context, documentId uuid.UUID) error

	// SearchSimilar returns the closest chunks to the query vector by
	// cosine distance, scoped to the given documents.
	SearchSimilar(ctx context.Context, query []float32, documentIds []uuid.UUID, limit int) ([]*entity.ChunkMatch, error)
}
