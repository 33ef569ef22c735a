package mapper

import (
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/model"

	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		Status:       entity.UserStatus(u.Status),
		CompanyId:    u.CompanyId,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Status:       string(u.Status),
		CompanyId:    u.CompanyId,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) CompanyToEntity(c *model.Company) *entity.Company {
	if c == nil {
		return nil
	}
	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}
	return &entity.Company{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *UserMapper) CompanyToModel(c *entity.Company) *model.Company {
	if c == nil {
		return nil
	}
	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}
	return &model.Company{
		Id:        c.Id,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *UserMapper) EmployeeToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}
	return &entity.Employee{
		Id:        e.Id,
		UserId:    e.UserId,
		CompanyId: e.CompanyId,
		ManagerId: e.ManagerId,
		CreatedAt: e.CreatedAt,
	}
}

func (m *UserMapper) EmployeeToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}
	return &model.Employee{
		Id:        e.Id,
		UserId:    e.UserId,
		CompanyId: e.CompanyId,
		ManagerId: e.ManagerId,
		CreatedAt: e.CreatedAt,
	}
}

func (m *UserMapper) EmployeesToEntities(employees []*model.Employee) []*entity.Employee {
	entities := make([]*entity.Employee, len(employees))
	for i, e := range employees {
		entities[i] = m.EmployeeToEntity(e)
	}
	return entities
}

func (m *UserMapper) ManagerToEntity(mg *model.Manager) *entity.Manager {
	if mg == nil {
		return nil
	}
	return &entity.Manager{
		Id:        mg.Id,
		UserId:    mg.UserId,
		CompanyId: mg.CompanyId,
		CreatedAt: mg.CreatedAt,
	}
}

func (m *UserMapper) ManagerToModel(mg *entity.Manager) *model.Manager {
	if mg == nil {
		return nil
	}
	return &model.Manager{
		Id:        mg.Id,
		UserId:    mg.UserId,
		CompanyId: mg.CompanyId,
		CreatedAt: mg.CreatedAt,
	}
}

func (m *UserMapper) ManagersToEntities(managers []*model.Manager) []*entity.Manager {
	entities := make([]*entity.Manager, len(managers))
	for i, mg := range managers {
		entities[i] = m.ManagerToEntity(mg)
	}
	return entities
}
