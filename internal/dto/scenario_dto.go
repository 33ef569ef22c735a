package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateScenarioRequest struct {
	Title        string      `json:"title" validate:"required"`
	Type         string      `json:"type" validate:"required,oneof=service_practice theory recommendation"`
	Description  string      `json:"description"`
	DocumentIds  []uuid.UUID `json:"document_ids"`
	TopicIds     []uuid.UUID `json:"topic_ids"`
	TrackId      *uuid.UUID  `json:"track_id"`
	DisplayOrder int         `json:"display_order"`
}

type UpdateScenarioRequest struct {
	Id           uuid.UUID   `json:"-"`
	Title        string      `json:"title" validate:"required"`
	Type         string      `json:"type" validate:"required,oneof=service_practice theory recommendation"`
	Description  string      `json:"description"`
	DocumentIds  []uuid.UUID `json:"document_ids"`
	TopicIds     []uuid.UUID `json:"topic_ids"`
	TrackId      *uuid.UUID  `json:"track_id"`
	DisplayOrder int         `json:"display_order"`
}

type ScenarioResponse struct {
	Id           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Type         string      `json:"type"`
	Description  string      `json:"description,omitempty"`
	DocumentIds  []uuid.UUID `json:"document_ids"`
	TopicIds     []uuid.UUID `json:"topic_ids"`
	TrackId      *uuid.UUID  `json:"track_id,omitempty"`
	DisplayOrder int         `json:"display_order"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

type AssignScenarioRequest struct {
	EmployeeIds []uuid.UUID `json:"employee_ids" validate:"required,min=1"`
	DueAt       *time.Time  `json:"due_at"`
}

type AssignmentResponse struct {
	Id         uuid.UUID  `json:"id"`
	ScenarioId uuid.UUID  `json:"scenario_id"`
	EmployeeId uuid.UUID  `json:"employee_id"`
	AssignedBy uuid.UUID  `json:"assigned_by"`
	Status     string     `json:"status"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
