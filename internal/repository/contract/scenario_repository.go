package contract

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ScenarioRepository interface {
	Create(ctx context.Context, scenario *entity.Scenario) error
	Update(ctx context.Context, scenario *entity.Scenario) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.ScenarioAssignment) error
	Update(ctx context.Context, assignment *entity.ScenarioAssignment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScenarioAssignment, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScenarioAssignment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AssignmentStatus) error
}
