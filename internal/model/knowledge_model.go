package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KnowledgeDocument struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text"`
	FileURL   *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (KnowledgeDocument) TableName() string {
	return "knowledge_base_documents"
}

type KnowledgeTopic struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(255);not null"`
	DocumentId   *uuid.UUID `gorm:"type:uuid;index"`
	DisplayOrder int        `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (KnowledgeTopic) TableName() string {
	return "knowledge_topics"
}

type TopicQuestion struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TopicId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question      string         `gorm:"type:text;not null"`
	CorrectAnswer string         `gorm:"type:text;not null"`
	Options       datatypes.JSON `gorm:"type:jsonb"`
	Difficulty    string         `gorm:"type:varchar(20);default:'medium'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (TopicQuestion) TableName() string {
	return "topic_questions"
}

// DocumentEmbedding uses text-embedding-004 output, 768 dimensions.
type DocumentEmbedding struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId uuid.UUID       `gorm:"type:uuid;not null;index"`
	ChunkIndex int             `gorm:"not null;default:0"`
	Content    string          `gorm:"type:text;not null"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "document_embeddings"
}
