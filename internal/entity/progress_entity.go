package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mastery thresholds: a topic counts as mastered once the employee has
// answered at least MasteryMinAttempts questions with a correct ratio of
// MasteryThreshold or better.
const (
	MasteryThreshold   = 0.8
	MasteryMinAttempts = 3
)

type QuestionAttempt struct {
	Id         uuid.UUID
	EmployeeId uuid.UUID
	TopicId    uuid.UUID
	QuestionId uuid.UUID
	SessionId  *uuid.UUID
	IsCorrect  bool
	AnswerText string
	CreatedAt  time.Time
}

type TopicProgress struct {
	Id              uuid.UUID
	EmployeeId      uuid.UUID
	TopicId         uuid.UUID
	TotalAttempts   int
	CorrectAttempts int
	MasteredAt      *time.Time
	UpdatedAt       *time.Time
}

// MasteryScore is the correct ratio, 0 when no attempts were recorded.
func (p *TopicProgress) MasteryScore() float64 {
	if p.TotalAttempts == 0 {
		return 0
	}
	return float64(p.CorrectAttempts) / float64(p.TotalAttempts)
}

// IsMastered applies the mastery rule to the current aggregates.
func (p *TopicProgress) IsMastered() bool {
	return p.TotalAttempts >= MasteryMinAttempts && p.MasteryScore() >= MasteryThreshold
}
