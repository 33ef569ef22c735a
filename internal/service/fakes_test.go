package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/repository"
	"ai-training-be/internal/repository/contract"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/voice"

	"github.com/google/uuid"
)

// fakeFactory hands every caller the same unit of work so tests can
// inspect repository state afterwards.
type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	sessions    *fakeSessionRepo
	assignments *fakeAssignmentRepo

	begins    int
	commits   int
	rollbacks int
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		sessions:    newFakeSessionRepo(),
		assignments: newFakeAssignmentRepo(),
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begins++; return nil }
func (u *fakeUow) Commit() error                   { u.commits++; return nil }
func (u *fakeUow) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository             { return nil }
func (u *fakeUow) CompanyRepository() contract.CompanyRepository       { return nil }
func (u *fakeUow) EmployeeRepository() contract.EmployeeRepository     { return nil }
func (u *fakeUow) ManagerRepository() contract.ManagerRepository       { return nil }
func (u *fakeUow) SessionRepository() contract.SessionRepository       { return u.sessions }
func (u *fakeUow) ScenarioRepository() contract.ScenarioRepository     { return nil }
func (u *fakeUow) AssignmentRepository() contract.AssignmentRepository { return u.assignments }
func (u *fakeUow) DocumentRepository() contract.DocumentRepository     { return nil }
func (u *fakeUow) TopicRepository() contract.TopicRepository           { return nil }
func (u *fakeUow) QuestionRepository() contract.QuestionRepository     { return nil }
func (u *fakeUow) EmbeddingRepository() contract.EmbeddingRepository   { return nil }
func (u *fakeUow) AttemptRepository() contract.AttemptRepository       { return nil }
func (u *fakeUow) ProgressRepository() contract.ProgressRepository     { return nil }
func (u *fakeUow) SettingsRepository() contract.SettingsRepository     { return nil }
func (u *fakeUow) NotificationRepository() repository.NotificationRepository {
	return nil
}

// fakeSessionRepo keeps sessions in a map and honors the id and company
// scoping specs the services actually use.
type fakeSessionRepo struct {
	store map[uuid.UUID]*entity.TrainingSession

	setAssessmentCalls int
	setAssessmentErr   error
	lastStatus         entity.AssessmentStatus
	lastResult         json.RawMessage
	lastExchanges      int

	setRecordingCalls int
	lastAudioURL      string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{store: map[uuid.UUID]*entity.TrainingSession{}}
}

func (r *fakeSessionRepo) CreateIfAbsent(ctx context.Context, session *entity.TrainingSession) (bool, error) {
	if _, ok := r.store[session.Id]; ok {
		return false, nil
	}
	copied := *session
	r.store[session.Id] = &copied
	return true, nil
}

func (r *fakeSessionRepo) Upsert(ctx context.Context, session *entity.TrainingSession) error {
	copied := *session
	r.store[session.Id] = &copied
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error) {
	for _, s := range r.store {
		if sessionMatches(s, specs) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error) {
	var out []*entity.TrainingSession
	for _, s := range r.store {
		if sessionMatches(s, specs) {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeSessionRepo) SetAssessment(ctx context.Context, id uuid.UUID, status entity.AssessmentStatus, result json.RawMessage, processedExchanges int, assessedAt time.Time) error {
	r.setAssessmentCalls++
	if r.setAssessmentErr != nil {
		return r.setAssessmentErr
	}
	r.lastStatus = status
	r.lastResult = result
	r.lastExchanges = processedExchanges
	if s, ok := r.store[id]; ok {
		st := status
		s.AssessmentStatus = &st
		s.AssessmentResult = result
		s.ProcessedExchanges = processedExchanges
		at := assessedAt
		s.AssessedAt = &at
	}
	return nil
}

func (r *fakeSessionRepo) SetRecording(ctx context.Context, id uuid.UUID, audioURL string, fileSize int64) error {
	r.setRecordingCalls++
	r.lastAudioURL = audioURL
	if s, ok := r.store[id]; ok {
		url := audioURL
		s.AudioURL = &url
		s.AudioFileSize = fileSize
	}
	return nil
}

func sessionMatches(s *entity.TrainingSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		case specification.CompanyOwnedBy:
			if s.CompanyId != v.CompanyID {
				return false
			}
		case specification.ByEmployeeID:
			if s.EmployeeId != v.EmployeeID {
				return false
			}
		case specification.ByConversationID:
			if s.ConversationId == nil || *s.ConversationId != v.ConversationID {
				return false
			}
		}
	}
	return true
}

type fakeAssignmentRepo struct {
	statuses map[uuid.UUID]entity.AssignmentStatus
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{statuses: map[uuid.UUID]entity.AssignmentStatus{}}
}

func (r *fakeAssignmentRepo) Create(ctx context.Context, assignment *entity.ScenarioAssignment) error {
	r.statuses[assignment.Id] = assignment.Status
	return nil
}

func (r *fakeAssignmentRepo) Update(ctx context.Context, assignment *entity.ScenarioAssignment) error {
	r.statuses[assignment.Id] = assignment.Status
	return nil
}

func (r *fakeAssignmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.statuses, id)
	return nil
}

func (r *fakeAssignmentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScenarioAssignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScenarioAssignment, error) {
	return nil, nil
}

func (r *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AssignmentStatus) error {
	r.statuses[id] = status
	return nil
}

// fakeFetcher satisfies ConversationFetcher with canned data.
type fakeFetcher struct {
	conv  *voice.Conversation
	err   error
	calls int
}

func (f *fakeFetcher) GetConversationWithRetry(ctx context.Context, conversationID string, maxRetries int) (*voice.Conversation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.conv, nil
}

// fakeEvaluator satisfies TranscriptEvaluator with canned data.
type fakeEvaluator struct {
	result json.RawMessage
	err    error
	calls  int
}

func (f *fakeEvaluator) EvaluateTranscript(ctx context.Context, transcript []entity.TranscriptTurn) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
