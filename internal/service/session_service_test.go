package service

import (
	"context"
	"testing"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartIsIdempotent(t *testing.T) {
	uow := newFakeUow()
	svc := NewSessionService(&fakeFactory{uow: uow}, nil, nil, nil)

	req := &dto.StartSessionRequest{
		Id:           uuid.New(),
		EmployeeId:   uuid.New(),
		CompanyId:    uuid.New(),
		TrainingMode: "service_practice",
		Language:     "en",
	}

	first, err := svc.Start(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := svc.Start(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Created, "replayed start must not create a new row")

	assert.Len(t, uow.sessions.store, 1)
}

func TestSessionStartMarksAssignmentInProgress(t *testing.T) {
	uow := newFakeUow()
	svc := NewSessionService(&fakeFactory{uow: uow}, nil, nil, nil)

	assignmentId := uuid.New()
	req := &dto.StartSessionRequest{
		Id:           uuid.New(),
		EmployeeId:   uuid.New(),
		CompanyId:    uuid.New(),
		AssignmentId: &assignmentId,
		TrainingMode: "theory",
	}

	_, err := svc.Start(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.AssignmentStatusInProgress, uow.assignments.statuses[assignmentId])

	// Replay must not touch the assignment again.
	uow.assignments.statuses[assignmentId] = entity.AssignmentStatusCompleted
	_, err = svc.Start(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.AssignmentStatusCompleted, uow.assignments.statuses[assignmentId])
}

func TestSessionSaveReplacesRowAndCompletesAssignment(t *testing.T) {
	uow := newFakeUow()
	svc := NewSessionService(&fakeFactory{uow: uow}, nil, nil, nil)

	assignmentId := uuid.New()
	started := time.Now().Add(-5 * time.Minute)
	ended := time.Now()

	req := &dto.SaveSessionRequest{
		Id:           uuid.New(),
		EmployeeId:   uuid.New(),
		CompanyId:    uuid.New(),
		AssignmentId: &assignmentId,
		TrainingMode: "service_practice",
		StartedAt:    started,
		EndedAt:      ended,
		Transcript: []entity.TranscriptTurn{
			{Role: "assistant", Content: "How can I help?", Timestamp: 0},
			{Role: "user", Content: "My order is wrong", Timestamp: 4000},
		},
	}

	res, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	// Duration falls back to the started/ended delta.
	assert.Equal(t, 300, res.SessionDurationSeconds)
	assert.Equal(t, entity.AssignmentStatusCompleted, uow.assignments.statuses[assignmentId])

	stored := uow.sessions.store[req.Id]
	require.NotNil(t, stored)
	assert.Len(t, stored.Transcript, 2)

	// A later save for the same id wins entirely.
	req.Transcript = nil
	req.SessionDurationSeconds = 42
	res, err = svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 42, res.SessionDurationSeconds)
	assert.Empty(t, uow.sessions.store[req.Id].Transcript)
}

func TestSessionShowScopedByCompany(t *testing.T) {
	uow := newFakeUow()
	svc := NewSessionService(&fakeFactory{uow: uow}, nil, nil, nil)

	companyId := uuid.New()
	sessionId := uuid.New()
	uow.sessions.store[sessionId] = &entity.TrainingSession{
		Id:        sessionId,
		CompanyId: companyId,
	}

	res, err := svc.Show(context.Background(), companyId, sessionId)
	require.NoError(t, err)
	require.NotNil(t, res)

	other, err := svc.Show(context.Background(), uuid.New(), sessionId)
	require.NoError(t, err)
	assert.Nil(t, other, "foreign company must not see the session")
}

func TestObjectKeyFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://bucket.s3.eu-west-1.amazonaws.com/recordings/audio/x.mp3", "recordings/audio/x.mp3"},
		{"https://example.com/file.mp3", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := objectKeyFromURL(tt.url); got != tt.want {
			t.Errorf("objectKeyFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
