package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordAttemptRequest struct {
	EmployeeId uuid.UUID  `json:"employee_id" validate:"required"`
	TopicId    uuid.UUID  `json:"topic_id" validate:"required"`
	QuestionId uuid.UUID  `json:"question_id" validate:"required"`
	SessionId  *uuid.UUID `json:"session_id"`
	IsCorrect  bool       `json:"is_correct"`
	AnswerText string     `json:"answer_text"`
}

type AttemptResponse struct {
	Id           uuid.UUID `json:"id"`
	TopicId      uuid.UUID `json:"topic_id"`
	IsCorrect    bool      `json:"is_correct"`
	MasteryScore float64   `json:"mastery_score"`
	Mastered     bool      `json:"mastered"`
}

type TopicProgressResponse struct {
	TopicId         uuid.UUID  `json:"topic_id"`
	TotalAttempts   int        `json:"total_attempts"`
	CorrectAttempts int        `json:"correct_attempts"`
	MasteryScore    float64    `json:"mastery_score"`
	Mastered        bool       `json:"mastered"`
	MasteredAt      *time.Time `json:"mastered_at,omitempty"`
}

type EmployeeProgressResponse struct {
	EmployeeId uuid.UUID               `json:"employee_id"`
	Topics     []TopicProgressResponse `json:"topics"`
}
