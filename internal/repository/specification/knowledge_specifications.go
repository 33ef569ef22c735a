package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}

type ByDocumentIDs struct {
	DocumentIDs []uuid.UUID
}

func (s ByDocumentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id IN ?", s.DocumentIDs)
}

type ByTopicID struct {
	TopicID uuid.UUID
}

func (s ByTopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicID)
}

type ByTopicIDs struct {
	TopicIDs []uuid.UUID
}

func (s ByTopicIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id IN ?", s.TopicIDs)
}
