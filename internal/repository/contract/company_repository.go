package contract

import (
	"context"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.Manager) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Manager, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Manager, error)
}
