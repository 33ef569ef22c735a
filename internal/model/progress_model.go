package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionAttempt struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId uuid.UUID  `gorm:"type:uuid;not null;index:idx_attempts_employee_topic,priority:1"`
	TopicId    uuid.UUID  `gorm:"type:uuid;not null;index:idx_attempts_employee_topic,priority:2"`
	QuestionId uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId  *uuid.UUID `gorm:"type:uuid;index"`
	IsCorrect  bool       `gorm:"not null"`
	AnswerText string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (QuestionAttempt) TableName() string {
	return "question_attempts"
}

type EmployeeTopicProgress struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_employee_topic,priority:1"`
	TopicId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_employee_topic,priority:2"`
	TotalAttempts   int       `gorm:"not null;default:0"`
	CorrectAttempts int       `gorm:"not null;default:0"`
	MasteredAt      *time.Time
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (EmployeeTopicProgress) TableName() string {
	return "employee_topic_progress"
}
