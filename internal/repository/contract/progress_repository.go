package contract

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *entity.QuestionAttempt) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionAttempt, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ProgressRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TopicProgress, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TopicProgress, error)

	// RecordAttempt bumps the per-topic aggregates for one answered
	// question, creating the progress row when it does not exist yet.
	RecordAttempt(ctx context.Context, employeeId, topicId uuid.UUID, correct bool) (*entity.TopicProgress, error)

	// MarkMastered stamps mastered_at once; calling it again is a no-op.
	MarkMastered(ctx context.Context, employeeId, topicId uuid.UUID) error
}
