package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"
	"ai-training-be/pkg/storage"
	"ai-training-be/pkg/voice"

	"github.com/google/uuid"
)

type ISessionService interface {
	Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	Save(ctx context.Context, req *dto.SaveSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	List(ctx context.Context, companyId uuid.UUID, employeeId *uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error)
	Delete(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	voiceClient    *voice.Client
	objectStore    storage.ObjectStore
	eventPublisher *pktNats.Publisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	voiceClient *voice.Client,
	objectStore storage.ObjectStore,
	eventPublisher *pktNats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		voiceClient:    voiceClient,
		objectStore:    objectStore,
		eventPublisher: eventPublisher,
	}
}

// Start registers a session under a client-chosen id. Replays of the same
// id are absorbed: the existing row stays untouched and Created is false.
func (c *sessionService) Start(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	session := entity.TrainingSession{
		Id:           req.Id,
		EmployeeId:   req.EmployeeId,
		CompanyId:    req.CompanyId,
		AssignmentId: req.AssignmentId,
		ScenarioId:   req.ScenarioId,
		TrainingMode: entity.TrainingMode(req.TrainingMode),
		Language:     req.Language,
		AgentId:      req.AgentId,
		StartedAt:    now,
		EndedAt:      now,
		Transcript:   []entity.TranscriptTurn{},
		CreatedAt:    now,
	}

	created, err := uow.SessionRepository().CreateIfAbsent(ctx, &session)
	if err != nil {
		return nil, err
	}

	if created && req.AssignmentId != nil {
		if err := uow.AssignmentRepository().UpdateStatus(ctx, *req.AssignmentId, entity.AssignmentStatusInProgress); err != nil {
			fmt.Printf("[WARN] Failed to mark assignment %s in progress: %v\n", *req.AssignmentId, err)
		}
	}

	return &dto.StartSessionResponse{
		Id:      session.Id,
		Created: created,
	}, nil
}

// Save persists the finished session as a full-row write. A later save for
// the same id replaces the earlier one entirely.
func (c *sessionService) Save(ctx context.Context, req *dto.SaveSessionRequest) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	duration := req.SessionDurationSeconds
	if duration == 0 && req.EndedAt.After(req.StartedAt) {
		duration = int(req.EndedAt.Sub(req.StartedAt).Seconds())
	}

	transcript := req.Transcript
	if transcript == nil {
		transcript = []entity.TranscriptTurn{}
	}

	session := entity.TrainingSession{
		Id:                     req.Id,
		EmployeeId:             req.EmployeeId,
		CompanyId:              req.CompanyId,
		AssignmentId:           req.AssignmentId,
		ScenarioId:             req.ScenarioId,
		TrainingMode:           entity.TrainingMode(req.TrainingMode),
		Language:               req.Language,
		AgentId:                req.AgentId,
		ConversationId:         req.ConversationId,
		StartedAt:              req.StartedAt,
		EndedAt:                req.EndedAt,
		SessionDurationSeconds: duration,
		Transcript:             transcript,
		AudioURL:               req.AudioURL,
		VideoURL:               req.VideoURL,
		CreatedAt:              time.Now(),
	}

	if err := uow.SessionRepository().Upsert(ctx, &session); err != nil {
		return nil, err
	}

	if req.AssignmentId != nil {
		if err := uow.AssignmentRepository().UpdateStatus(ctx, *req.AssignmentId, entity.AssignmentStatusCompleted); err != nil {
			fmt.Printf("[WARN] Failed to mark assignment %s completed: %v\n", *req.AssignmentId, err)
		}
	}

	if c.eventPublisher != nil {
		evt := events.New(events.TypeSessionCompleted, map[string]interface{}{
			"session_id":  session.Id,
			"employee_id": session.EmployeeId,
			"company_id":  session.CompanyId,
			"mode":        string(session.TrainingMode),
		})
		// Notification fan-out is auxiliary, the save already succeeded
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_COMPLETED event: %v\n", err)
		}
	}

	return sessionToResponse(&session), nil
}

func (c *sessionService) Show(ctx context.Context, companyId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	return sessionToResponse(session), nil
}

func (c *sessionService) List(ctx context.Context, companyId uuid.UUID, employeeId *uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{
		specification.CompanyOwnedBy{CompanyID: companyId},
		specification.OrderBy{Field: "started_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if employeeId != nil {
		specs = append(specs, specification.ByEmployeeID{EmployeeID: *employeeId})
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, sessionToResponse(session))
	}

	return response, nil
}

// Delete removes the session row and cleans up the remote conversation and
// the stored recording on a best-effort basis.
func (c *sessionService) Delete(ctx context.Context, companyId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CompanyOwnedBy{CompanyID: companyId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	if err := uow.SessionRepository().Delete(ctx, id); err != nil {
		return err
	}

	if session.ConversationId != nil && c.voiceClient != nil {
		if err := c.voiceClient.DeleteConversation(ctx, *session.ConversationId); err != nil {
			fmt.Printf("[WARN] Failed to delete remote conversation %s: %v\n", *session.ConversationId, err)
		}
	}

	if session.AudioURL != nil && c.objectStore != nil {
		if key := objectKeyFromURL(*session.AudioURL); key != "" {
			if err := c.objectStore.Delete(ctx, key); err != nil {
				fmt.Printf("[WARN] Failed to delete recording %s: %v\n", key, err)
			}
		}
	}

	return nil
}

// objectKeyFromURL recovers the bucket key from a public object URL.
func objectKeyFromURL(url string) string {
	idx := strings.Index(url, ".amazonaws.com/")
	if idx < 0 {
		return ""
	}
	return url[idx+len(".amazonaws.com/"):]
}

func sessionToResponse(s *entity.TrainingSession) *dto.SessionResponse {
	res := dto.SessionResponse{
		Id:                     s.Id,
		EmployeeId:             s.EmployeeId,
		CompanyId:              s.CompanyId,
		AssignmentId:           s.AssignmentId,
		ScenarioId:             s.ScenarioId,
		TrainingMode:           string(s.TrainingMode),
		Language:               s.Language,
		AgentId:                s.AgentId,
		ConversationId:         s.ConversationId,
		StartedAt:              s.StartedAt,
		EndedAt:                s.EndedAt,
		SessionDurationSeconds: s.SessionDurationSeconds,
		Transcript:             s.Transcript,
		AudioURL:               s.AudioURL,
		VideoURL:               s.VideoURL,
		AssessmentResult:       s.AssessmentResult,
		ProcessedExchanges:     s.ProcessedExchanges,
		AssessedAt:             s.AssessedAt,
		CreatedAt:              s.CreatedAt,
	}
	if s.AssessmentStatus != nil {
		status := string(*s.AssessmentStatus)
		res.AssessmentStatus = &status
	}
	return &res
}
