package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/entity"
	"ai-training-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	uploads map[string][]byte
	deletes []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: map[string][]byte{}}
}

func (f *fakeObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.uploads[key] = data
	return "https://bucket.s3.eu-west-1.amazonaws.com/" + key, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

func TestWebhookLinksRecording(t *testing.T) {
	uow := newFakeUow()
	store := newFakeObjectStore()
	svc := NewWebhookService(&fakeFactory{uow: uow}, store, nil)

	conversationId := "conv_42"
	sessionId := uuid.New()
	uow.sessions.store[sessionId] = &entity.TrainingSession{
		Id:             sessionId,
		CompanyId:      uuid.New(),
		ConversationId: &conversationId,
	}

	audio := []byte("fake mp3 bytes")
	err := svc.HandlePostCall(context.Background(), &dto.ConvaiWebhookRequest{
		Type: "post_call_audio",
		Data: dto.ConvaiWebhookData{
			ConversationId: conversationId,
			FullAudio:      base64.StdEncoding.EncodeToString(audio),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, uow.sessions.setRecordingCalls)
	assert.Contains(t, uow.sessions.lastAudioURL, "recordings/audio/"+sessionId.String())

	require.Len(t, store.uploads, 1)
	for key, data := range store.uploads {
		assert.True(t, strings.HasPrefix(key, "recordings/audio/"))
		assert.Equal(t, audio, data)
	}
}

func TestWebhookUnknownConversationIsNoOp(t *testing.T) {
	uow := newFakeUow()
	store := newFakeObjectStore()
	svc := NewWebhookService(&fakeFactory{uow: uow}, store, nil)

	err := svc.HandlePostCall(context.Background(), &dto.ConvaiWebhookRequest{
		Type: "post_call_audio",
		Data: dto.ConvaiWebhookData{
			ConversationId: "conv_unknown",
			FullAudio:      base64.StdEncoding.EncodeToString([]byte("audio")),
		},
	})
	require.NoError(t, err, "unknown conversations are acked, not retried")
	assert.Empty(t, store.uploads)
	assert.Zero(t, uow.sessions.setRecordingCalls)
}

func TestWebhookWithoutObjectStoreAcksAndDropsAudio(t *testing.T) {
	uow := newFakeUow()
	svc := NewWebhookService(&fakeFactory{uow: uow}, nil, nil)

	conversationId := "conv_7"
	sessionId := uuid.New()
	uow.sessions.store[sessionId] = &entity.TrainingSession{
		Id:             sessionId,
		CompanyId:      uuid.New(),
		ConversationId: &conversationId,
	}

	err := svc.HandlePostCall(context.Background(), &dto.ConvaiWebhookRequest{
		Type: "post_call_audio",
		Data: dto.ConvaiWebhookData{
			ConversationId: conversationId,
			FullAudio:      base64.StdEncoding.EncodeToString([]byte("audio")),
		},
	})
	require.NoError(t, err, "missing storage must ack, not fail or panic")
	assert.Zero(t, uow.sessions.setRecordingCalls)
}

func TestWebhookIgnoresOtherTypes(t *testing.T) {
	uow := newFakeUow()
	store := newFakeObjectStore()
	svc := NewWebhookService(&fakeFactory{uow: uow}, store, nil)

	err := svc.HandlePostCall(context.Background(), &dto.ConvaiWebhookRequest{
		Type: "post_call_transcription",
	})
	require.NoError(t, err)
	assert.Empty(t, store.uploads)
}

func TestWebhookRejectsBadPayloads(t *testing.T) {
	uow := newFakeUow()
	svc := NewWebhookService(&fakeFactory{uow: uow}, newFakeObjectStore(), nil)

	tests := []struct {
		name string
		req  *dto.ConvaiWebhookRequest
	}{
		{
			name: "missing conversation id",
			req: &dto.ConvaiWebhookRequest{
				Type: "post_call_audio",
				Data: dto.ConvaiWebhookData{FullAudio: "aGk="},
			},
		},
		{
			name: "missing audio",
			req: &dto.ConvaiWebhookRequest{
				Type: "post_call_audio",
				Data: dto.ConvaiWebhookData{ConversationId: "conv_1"},
			},
		},
		{
			name: "invalid base64",
			req: &dto.ConvaiWebhookRequest{
				Type: "post_call_audio",
				Data: dto.ConvaiWebhookData{ConversationId: "conv_1", FullAudio: "%%%not-base64%%%"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.HandlePostCall(context.Background(), tt.req)
			require.Error(t, err)

			var appErr *serverutils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
		})
	}
}
