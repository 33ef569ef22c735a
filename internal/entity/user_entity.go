package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
	UserRoleAdmin    UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash *string
	Role         UserRole
	Status       UserStatus
	CompanyId    *uuid.UUID
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

type Company struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Manager struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CompanyId uuid.UUID
	CreatedAt time.Time
}

type Employee struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CompanyId uuid.UUID
	ManagerId *uuid.UUID
	CreatedAt time.Time
}
