package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Scenario struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Type         string         `gorm:"type:varchar(30);not null"`
	Description  string         `gorm:"type:text"`
	DocumentIds  datatypes.JSON `gorm:"type:jsonb"`
	TopicIds     datatypes.JSON `gorm:"type:jsonb"`
	TrackId      *uuid.UUID     `gorm:"type:uuid;index"`
	DisplayOrder int            `gorm:"not null;default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Scenario) TableName() string {
	return "scenarios"
}

type ScenarioAssignment struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ScenarioId uuid.UUID  `gorm:"type:uuid;not null;index"`
	EmployeeId uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedBy uuid.UUID  `gorm:"type:uuid;not null"`
	Status     string     `gorm:"type:varchar(20);not null;default:'assigned'"`
	DueAt      *time.Time `gorm:"index"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (ScenarioAssignment) TableName() string {
	return "scenario_assignments"
}
