package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScenarioType string

const (
	ScenarioTypeServicePractice ScenarioType = "service_practice"
	ScenarioTypeTheory          ScenarioType = "theory"
	ScenarioTypeRecommendation  ScenarioType = "recommendation"
)

type Scenario struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	Title        string
	Type         ScenarioType
	Description  string
	DocumentIds  []uuid.UUID
	TopicIds     []uuid.UUID
	TrackId      *uuid.UUID
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
}

type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

type ScenarioAssignment struct {
	Id         uuid.UUID
	ScenarioId uuid.UUID
	EmployeeId uuid.UUID
	AssignedBy uuid.UUID
	Status     AssignmentStatus
	DueAt      *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
