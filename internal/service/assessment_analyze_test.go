package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ai-training-be/internal/entity"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/pkg/voice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSession(uow *fakeUow, companyId uuid.UUID, conversationId string) *entity.TrainingSession {
	sessionId := uuid.New()
	s := &entity.TrainingSession{
		Id:         sessionId,
		EmployeeId: uuid.New(),
		CompanyId:  companyId,
	}
	if conversationId != "" {
		s.ConversationId = &conversationId
	}
	uow.sessions.store[sessionId] = s
	return s
}

func TestAnalyzeReturnsCachedVerdict(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	status := entity.AssessmentStatusCompleted
	session.AssessmentStatus = &status
	session.AssessmentResult = json.RawMessage(`{"score":90}`)
	session.ProcessedExchanges = 4

	fetcher := &fakeFetcher{}
	evaluator := &fakeEvaluator{}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, evaluator, nil, 0, 0)

	res, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.NoError(t, err)

	assert.True(t, res.Cached)
	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, 4, res.ProcessedExchanges)
	assert.Zero(t, fetcher.calls, "cache hit must not call the voice provider")
	assert.Zero(t, evaluator.calls)
}

func TestAnalyzeForceBypassesCache(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	status := entity.AssessmentStatusCompleted
	session.AssessmentStatus = &status
	session.AssessmentResult = json.RawMessage(`{"score":90}`)

	fetcher := &fakeFetcher{conv: &voice.Conversation{ConversationID: "conv_1"}}
	evaluator := &fakeEvaluator{result: json.RawMessage(`{"score":70}`)}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, evaluator, nil, 0, 0)

	res, err := svc.Analyze(context.Background(), companyId, session.Id, true)
	require.NoError(t, err)

	assert.False(t, res.Cached)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, evaluator.calls)
	assert.JSONEq(t, `{"score":70}`, string(res.Result))
}

func TestAnalyzeWithoutConversationFails(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "")

	svc := NewAssessmentService(&fakeFactory{uow: uow}, &fakeFetcher{}, &fakeEvaluator{}, nil, 0, 0)

	_, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestAnalyzeUnknownSession(t *testing.T) {
	uow := newFakeUow()
	svc := NewAssessmentService(&fakeFactory{uow: uow}, &fakeFetcher{}, &fakeEvaluator{}, nil, 0, 0)

	_, err := svc.Analyze(context.Background(), uuid.New(), uuid.New(), false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestAnalyzeTranscriptNotReadyIsRetryable(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	fetcher := &fakeFetcher{err: &voice.APIError{StatusCode: 404, Retryable: true}}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, &fakeEvaluator{}, nil, 0, 0)

	_, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.Retryable)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
}

func TestAnalyzeExhaustedRetriesIsRetryable(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	// The client wraps its sentinel when the retry budget runs out on a
	// network error. That must still surface as retryable, not a plain 500.
	fetchErr := fmt.Errorf("%w after 3 attempts: %w", voice.ErrTranscriptUnavailable, errors.New("dial tcp: connection refused"))
	fetcher := &fakeFetcher{err: fetchErr}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, &fakeEvaluator{}, nil, 0, 0)

	_, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.Error(t, err)

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.Retryable)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Status)
}

func TestAnalyzeCacheWriteFailureStillReturnsResult(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")
	uow.sessions.setAssessmentErr = errors.New("deadlock detected")

	fetcher := &fakeFetcher{conv: &voice.Conversation{
		ConversationID: "conv_1",
		Transcript: []voice.RawTurn{
			{Role: "agent", Message: "What would you say first?", TimeInCall: 1},
			{Role: "user", Message: "I would apologize for the wait", TimeInCall: 4},
		},
	}}
	evaluator := &fakeEvaluator{result: json.RawMessage(`{"score":80}`)}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, evaluator, nil, 0, 0)

	res, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.NoError(t, err, "a failed cache write must not fail the request")

	assert.Equal(t, "completed", res.Status)
	assert.JSONEq(t, `{"score":80}`, string(res.Result))
	assert.Contains(t, res.Warnings, "assessment result could not be cached")
	assert.Equal(t, 1, uow.sessions.setAssessmentCalls)
}

func TestAnalyzeScoringFailureIsSoft(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	fetcher := &fakeFetcher{conv: &voice.Conversation{
		ConversationID: "conv_1",
		Transcript: []voice.RawTurn{
			{Role: "agent", Message: "What went wrong?", TimeInCall: 1},
			{Role: "user", Message: "The order arrived late", TimeInCall: 4},
		},
	}}
	evaluator := &fakeEvaluator{err: errors.New("model overloaded")}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, evaluator, nil, 0, 0)

	res, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.NoError(t, err, "scoring failure must not fail the request")

	assert.Equal(t, "failed", res.Status)
	assert.Equal(t, 1, res.ProcessedExchanges)
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, entity.AssessmentStatusFailed, uow.sessions.lastStatus)
}

func TestAnalyzeSuccessCachesResult(t *testing.T) {
	uow := newFakeUow()
	companyId := uuid.New()
	session := seedSession(uow, companyId, "conv_1")

	fetcher := &fakeFetcher{conv: &voice.Conversation{
		ConversationID: "conv_1",
		Transcript: []voice.RawTurn{
			{Role: "agent", Message: "How do you open the call?", TimeInCall: 1},
			{Role: "user", Message: "Greet the customer warmly", TimeInCall: 5},
			{Role: "agent", Message: "And then?", TimeInCall: 9},
			{Role: "user", Message: "Ask what they need", TimeInCall: 12},
		},
	}}
	evaluator := &fakeEvaluator{result: json.RawMessage(`{"score":85}`)}
	svc := NewAssessmentService(&fakeFactory{uow: uow}, fetcher, evaluator, nil, 0, 0)

	res, err := svc.Analyze(context.Background(), companyId, session.Id, false)
	require.NoError(t, err)

	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, 2, res.ProcessedExchanges)
	assert.Equal(t, 1, uow.sessions.setAssessmentCalls)
	assert.Equal(t, entity.AssessmentStatusCompleted, uow.sessions.lastStatus)
	assert.JSONEq(t, `{"score":85}`, string(uow.sessions.lastResult))

	// The refreshed transcript is persisted on the session row.
	stored := uow.sessions.store[session.Id]
	assert.Len(t, stored.Transcript, 4)
}
