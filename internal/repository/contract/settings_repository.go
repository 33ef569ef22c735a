package contract

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SettingsRepository interface {
	// Upsert writes the company settings row, creating it on first save.
	Upsert(ctx context.Context, settings *entity.CompanySettings) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanySettings, error)

	CreateRecommendationQuestion(ctx context.Context, question *entity.RecommendationQuestion) error
	DeleteRecommendationQuestion(ctx context.Context, id uuid.UUID) error
	FindRecommendationQuestions(ctx context.Context, specs ...specification.Specification) ([]*entity.RecommendationQuestion, error)
}
