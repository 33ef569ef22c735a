package service

import (
	"context"
	"fmt"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"

	"github.com/google/uuid"
)

type IProgressService interface {
	RecordAttempt(ctx context.Context, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error)
	EmployeeProgress(ctx context.Context, employeeId uuid.UUID) (*dto.EmployeeProgressResponse, error)
	TopicProgress(ctx context.Context, employeeId, topicId uuid.UUID) (*dto.TopicProgressResponse, error)
}

type progressService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewProgressService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
) IProgressService {
	return &progressService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// RecordAttempt stores one answered question and folds it into the per-topic
// aggregates. Crossing the mastery threshold stamps the topic mastered and
// emits an event, exactly once.
func (c *progressService) RecordAttempt(ctx context.Context, req *dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	attempt := entity.QuestionAttempt{
		Id:         uuid.New(),
		EmployeeId: req.EmployeeId,
		TopicId:    req.TopicId,
		QuestionId: req.QuestionId,
		SessionId:  req.SessionId,
		IsCorrect:  req.IsCorrect,
		AnswerText: req.AnswerText,
		CreatedAt:  time.Now(),
	}

	if err := uow.AttemptRepository().Create(ctx, &attempt); err != nil {
		return nil, err
	}

	progress, err := uow.ProgressRepository().RecordAttempt(ctx, req.EmployeeId, req.TopicId, req.IsCorrect)
	if err != nil {
		return nil, err
	}

	mastered := progress.MasteredAt != nil
	if !mastered && progress.IsMastered() {
		if err := uow.ProgressRepository().MarkMastered(ctx, req.EmployeeId, req.TopicId); err != nil {
			return nil, err
		}
		mastered = true

		if c.eventPublisher != nil {
			evt := events.New(events.TypeTopicMastered, map[string]interface{}{
				"employee_id": req.EmployeeId,
				"topic_id":    req.TopicId,
				"score":       progress.MasteryScore(),
			})
			if err := c.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish TOPIC_MASTERED event: %v\n", err)
			}
		}
	}

	return &dto.AttemptResponse{
		Id:           attempt.Id,
		TopicId:      req.TopicId,
		IsCorrect:    req.IsCorrect,
		MasteryScore: progress.MasteryScore(),
		Mastered:     mastered,
	}, nil
}

func (c *progressService) EmployeeProgress(ctx context.Context, employeeId uuid.UUID) (*dto.EmployeeProgressResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.ProgressRepository().FindAll(ctx,
		specification.ByEmployeeID{EmployeeID: employeeId},
	)
	if err != nil {
		return nil, err
	}

	topics := make([]dto.TopicProgressResponse, 0, len(list))
	for _, progress := range list {
		topics = append(topics, progressToResponse(progress))
	}

	return &dto.EmployeeProgressResponse{
		EmployeeId: employeeId,
		Topics:     topics,
	}, nil
}

func (c *progressService) TopicProgress(ctx context.Context, employeeId, topicId uuid.UUID) (*dto.TopicProgressResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	progress, err := uow.ProgressRepository().FindOne(ctx,
		specification.ByEmployeeID{EmployeeID: employeeId},
		specification.ByTopicID{TopicID: topicId},
	)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, nil
	}

	res := progressToResponse(progress)
	return &res, nil
}

func progressToResponse(p *entity.TopicProgress) dto.TopicProgressResponse {
	return dto.TopicProgressResponse{
		TopicId:         p.TopicId,
		TotalAttempts:   p.TotalAttempts,
		CorrectAttempts: p.CorrectAttempts,
		MasteryScore:    p.MasteryScore(),
		Mastered:        p.MasteredAt != nil,
		MasteredAt:      p.MasteredAt,
	}
}
