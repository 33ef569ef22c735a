package implementation

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/mapper"
	"ai-training-be/internal/model"
	"ai-training-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewEmbeddingRepository(db *gorm.DB) contract.EmbeddingRepository {
	return &EmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *EmbeddingRepositoryImpl) Create(ctx context.Context, chunk *entity.DocumentChunk) error {
	m := r.mapper.ChunkToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ChunkToEntity(m)
	return nil
}

func (r *EmbeddingRepositoryImpl) CreateBatch(ctx context.Context, chunks []*entity.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.DocumentEmbedding, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ChunkToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*chunks[i] = *r.mapper.ChunkToEntity(m)
	}
	return nil
}

func (r *EmbeddingRepositoryImpl) DeleteAllByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.DocumentEmbedding{}).Error
}

func (r *EmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, query []float32, documentIds []uuid.UUID, limit int) ([]*entity.ChunkMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.DocumentEmbedding
		Distance float64
	}
	var results []result

	queryVector := pgvector.NewVector(query)

	// pgvector cosine distance operator; lower is closer.
	db := r.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document_embeddings.*, embedding <=> ? as distance", queryVector)
	if len(documentIds) > 0 {
		db = db.Where("document_id IN ?", documentIds)
	}
	err := db.Order("distance ASC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.ChunkMatch, len(results))
	for i, res := range results {
		matches[i] = &entity.ChunkMatch{
			Chunk:    *r.mapper.ChunkToEntity(&res.DocumentEmbedding),
			Distance: res.Distance,
		}
	}
	return matches, nil
}
