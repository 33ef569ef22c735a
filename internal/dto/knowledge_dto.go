package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content" validate:"required"`
	FileURL *string `json:"file_url"`
}

type UpdateDocumentRequest struct {
	Id      uuid.UUID `json:"-"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content" validate:"required"`
	FileURL *string   `json:"file_url"`
}

type DocumentResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content,omitempty"`
	FileURL   *string    `json:"file_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type CreateTopicRequest struct {
	Name         string     `json:"name" validate:"required"`
	DocumentId   *uuid.UUID `json:"document_id"`
	DisplayOrder int        `json:"display_order"`
}

type TopicResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	DocumentId   *uuid.UUID `json:"document_id,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
}

type QuestionResponse struct {
	Id            uuid.UUID `json:"id"`
	TopicId       uuid.UUID `json:"topic_id"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer"`
	Options       []string  `json:"options"`
	Difficulty    string    `json:"difficulty"`
}

type SearchRequest struct {
	Query       string      `json:"query" validate:"required"`
	DocumentIds []uuid.UUID `json:"document_ids"`
	Limit       int         `json:"limit"`
}

type SearchResultResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Content    string    `json:"content"`
	ChunkIndex int       `json:"chunk_index"`
	Distance   float64   `json:"distance"`
}

// PublishDocumentJobMessage rides the in-process pipeline: re-embed the
// document's chunks and regenerate topic questions.
type PublishDocumentJobMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
