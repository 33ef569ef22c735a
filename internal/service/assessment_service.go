package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"
	"ai-training-be/pkg/voice"

	"github.com/google/uuid"
)

// ConversationFetcher pulls a finished conversation from the voice provider.
type ConversationFetcher interface {
	GetConversationWithRetry(ctx context.Context, conversationID string, maxRetries int) (*voice.Conversation, error)
}

// TranscriptEvaluator scores a transcript and returns the raw assessment JSON.
type TranscriptEvaluator interface {
	EvaluateTranscript(ctx context.Context, transcript []entity.TranscriptTurn) (json.RawMessage, error)
}

type IAssessmentService interface {
	Analyze(ctx context.Context, companyId uuid.UUID, sessionId uuid.UUID, force bool) (*dto.AnalyzeSessionResponse, error)
}

type assessmentService struct {
	uowFactory        unitofwork.RepositoryFactory
	fetcher           ConversationFetcher
	evaluator         TranscriptEvaluator
	eventPublisher    *pktNats.Publisher
	transcriptRetries int
	scoringTimeout    time.Duration
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	fetcher ConversationFetcher,
	evaluator TranscriptEvaluator,
	eventPublisher *pktNats.Publisher,
	transcriptRetries int,
	scoringTimeoutSeconds int,
) IAssessmentService {
	if transcriptRetries <= 0 {
		transcriptRetries = 5
	}
	if scoringTimeoutSeconds <= 0 {
		scoringTimeoutSeconds = 45
	}
	return &assessmentService{
		uowFactory:        uowFactory,
		fetcher:           fetcher,
		evaluator:         evaluator,
		eventPublisher:    eventPublisher,
		transcriptRetries: transcriptRetries,
		scoringTimeout:    time.Duration(scoringTimeoutSeconds) * time.Second,
	}
}

// Analyze fetches the session transcript from the voice provider, scores it
// and caches the verdict on the session row. A completed assessment is
// returned from cache unless force is set.
func (c *assessmentService) Analyze(ctx context.Context, companyId uuid.UUID, sessionId uuid.UUID, force bool) (*dto.AnalyzeSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFound("session not found")
	}

	if !force && session.HasCompletedAssessment() {
		return &dto.AnalyzeSessionResponse{
			SessionId:          session.Id,
			Status:             string(entity.AssessmentStatusCompleted),
			Result:             session.AssessmentResult,
			ProcessedExchanges: session.ProcessedExchanges,
			Cached:             true,
		}, nil
	}

	if session.ConversationId == nil || *session.ConversationId == "" {
		return nil, serverutils.NewBadRequest("session has no conversation to analyze")
	}

	conversation, err := c.fetcher.GetConversationWithRetry(ctx, *session.ConversationId, c.transcriptRetries)
	if err != nil {
		var apiErr *voice.APIError
		if errors.Is(err, voice.ErrTranscriptUnavailable) || (errors.As(err, &apiErr) && apiErr.Retryable) {
			return nil, serverutils.NewRetryable("transcript not available yet, retry later")
		}
		return nil, err
	}

	var warnings []string

	transcript := voice.MapTranscript(conversation.Transcript)
	session.Transcript = transcript
	if conversation.Metadata.CallDurationSecs > 0 {
		session.SessionDurationSeconds = conversation.Metadata.CallDurationSecs
	}
	if err := uow.SessionRepository().Upsert(ctx, session); err != nil {
		warnings = append(warnings, "session transcript could not be refreshed")
		fmt.Printf("[WARN] Failed to refresh transcript for session %s: %v\n", session.Id, err)
	}

	exchanges := CountExchanges(transcript)
	now := time.Now()

	scoringCtx, cancel := context.WithTimeout(ctx, c.scoringTimeout)
	defer cancel()

	result, err := c.evaluator.EvaluateTranscript(scoringCtx, transcript)
	if err != nil {
		// Scoring failure is soft: the transcript is saved, the verdict
		// just is not available this time around.
		warnings = append(warnings, "scoring did not complete: "+err.Error())
		if cacheErr := uow.SessionRepository().SetAssessment(ctx, session.Id, entity.AssessmentStatusFailed, nil, exchanges, now); cacheErr != nil {
			warnings = append(warnings, "assessment status could not be cached")
			fmt.Printf("[WARN] Failed to record failed assessment for session %s: %v\n", session.Id, cacheErr)
		}
		c.publishAssessmentEvent(ctx, events.TypeAssessmentFailed, session, exchanges)
		return &dto.AnalyzeSessionResponse{
			SessionId:          session.Id,
			Status:             string(entity.AssessmentStatusFailed),
			ProcessedExchanges: exchanges,
			Warnings:           warnings,
		}, nil
	}

	if cacheErr := uow.SessionRepository().SetAssessment(ctx, session.Id, entity.AssessmentStatusCompleted, result, exchanges, now); cacheErr != nil {
		warnings = append(warnings, "assessment result could not be cached")
		fmt.Printf("[WARN] Failed to cache assessment for session %s: %v\n", session.Id, cacheErr)
	}

	c.publishAssessmentEvent(ctx, events.TypeAssessmentCompleted, session, exchanges)

	return &dto.AnalyzeSessionResponse{
		SessionId:          session.Id,
		Status:             string(entity.AssessmentStatusCompleted),
		Result:             result,
		ProcessedExchanges: exchanges,
		Warnings:           warnings,
	}, nil
}

func (c *assessmentService) publishAssessmentEvent(ctx context.Context, eventType string, session *entity.TrainingSession, exchanges int) {
	if c.eventPublisher == nil {
		return
	}
	evt := events.New(eventType, map[string]interface{}{
		"session_id":  session.Id,
		"employee_id": session.EmployeeId,
		"company_id":  session.CompanyId,
		"exchanges":   exchanges,
	})
	if err := c.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

// CountExchanges counts completed question-answer rounds: an assistant turn
// that asks something, answered by a user turn of more than one word.
// One-word replies to rhetorical prompts do not count.
func CountExchanges(transcript []entity.TranscriptTurn) int {
	count := 0
	for i := 0; i < len(transcript)-1; i++ {
		turn := transcript[i]
		next := transcript[i+1]
		if turn.Role != entity.TranscriptRoleAssistant || !strings.Contains(turn.Content, "?") {
			continue
		}
		if next.Role == entity.TranscriptRoleUser && len(strings.Fields(next.Content)) >= 2 {
			count++
		}
	}
	return count
}
