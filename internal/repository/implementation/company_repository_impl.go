package implementation

import (
	"context"
	"errors"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/mapper"
	"ai-training-be/internal/model"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewCompanyRepository(db *gorm.DB) contract.CompanyRepository {
	return &CompanyRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *CompanyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *entity.Company) error {
	m := r.mapper.CompanyToModel(company)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*company = *r.mapper.CompanyToEntity(m)
	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *entity.Company) error {
	m := r.mapper.CompanyToModel(company)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*company = *r.mapper.CompanyToEntity(m)
	return nil
}

func (r *CompanyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	var m model.Company
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CompanyToEntity(&m), nil
}

func (r *CompanyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	var models []*model.Company
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Company, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CompanyToEntity(m)
	}
	return entities, nil
}

type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewEmployeeRepository(db *gorm.DB) contract.EmployeeRepository {
	return &EmployeeRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *EmployeeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.EmployeeToModel(employee)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.EmployeeToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, employee *entity.Employee) error {
	m := r.mapper.EmployeeToModel(employee)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*employee = *r.mapper.EmployeeToEntity(m)
	return nil
}

func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Employee{}, id).Error
}

func (r *EmployeeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Employee, error) {
	var m model.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EmployeeToEntity(&m), nil
}

func (r *EmployeeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Employee, error) {
	var models []*model.Employee
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.EmployeesToEntities(models), nil
}

func (r *EmployeeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Employee{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type ManagerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewManagerRepository(db *gorm.DB) contract.ManagerRepository {
	return &ManagerRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *ManagerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ManagerRepositoryImpl) Create(ctx context.Context, manager *entity.Manager) error {
	m := r.mapper.ManagerToModel(manager)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*manager = *r.mapper.ManagerToEntity(m)
	return nil
}

func (r *ManagerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Manager, error) {
	var m model.Manager
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ManagerToEntity(&m), nil
}

func (r *ManagerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Manager, error) {
	var models []*model.Manager
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ManagersToEntities(models), nil
}
