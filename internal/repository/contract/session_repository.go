package contract

import (
	"context"
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SessionRepository interface {
	// CreateIfAbsent inserts the session only when no row with its id
	// exists yet. It reports whether a new row was created.
	CreateIfAbsent(ctx context.Context, session *entity.TrainingSession) (bool, error)

	// Upsert inserts the session or, on id conflict, replaces every
	// column with the incoming values. Last write wins.
	Upsert(ctx context.Context, session *entity.TrainingSession) error

	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SetAssessment writes the assessment columns without touching the
	// rest of the row.
	SetAssessment(ctx context.Context, id uuid.UUID, status entity.AssessmentStatus, result json.RawMessage, processedExchanges int, assessedAt time.Time) error

	// SetRecording links an uploaded audio file to the session.
	SetRecording(ctx context.Context, id uuid.UUID, audioURL string, fileSize int64) error
}
