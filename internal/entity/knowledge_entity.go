package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeDocument struct {
	Id        uuid.UUID
	CompanyId uuid.UUID
	Title     string
	Content   string
	FileURL   *string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

type KnowledgeTopic struct {
	Id           uuid.UUID
	CompanyId    uuid.UUID
	Name         string
	DocumentId   *uuid.UUID
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type TopicQuestion struct {
	Id            uuid.UUID
	TopicId       uuid.UUID
	Question      string
	CorrectAnswer string
	Options       []string
	Difficulty    string
	CreatedAt     time.Time
}

// DocumentChunk is one embedded slice of a knowledge document.
type DocumentChunk struct {
	Id         uuid.UUID
	DocumentId uuid.UUID
	ChunkIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}

// ChunkMatch is a semantic-search hit with its cosine distance.
type ChunkMatch struct {
	Chunk    DocumentChunk
	Distance float64
}
