package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName     string         `gorm:"type:varchar(255);not null"`
	PasswordHash *string        `gorm:"type:text"`
	Role         string         `gorm:"type:varchar(20);not null;default:'employee'"`
	Status       string         `gorm:"type:varchar(20);not null;default:'active'"`
	CompanyId    *uuid.UUID     `gorm:"type:uuid;index"`
	AvatarURL    *string        `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type Company struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Company) TableName() string {
	return "companies"
}

type Manager struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Manager) TableName() string {
	return "managers"
}

type Employee struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ManagerId *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}
