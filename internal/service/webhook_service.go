package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/internal/repository/specification"
	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/events"
	pktNats "ai-training-be/pkg/nats"
	"ai-training-be/pkg/storage"
)

const webhookTypePostCallAudio = "post_call_audio"

type IWebhookService interface {
	HandlePostCall(ctx context.Context, req *dto.ConvaiWebhookRequest) error
}

type webhookService struct {
	uowFactory     unitofwork.RepositoryFactory
	objectStore    storage.ObjectStore
	eventPublisher *pktNats.Publisher
}

func NewWebhookService(
	uowFactory unitofwork.RepositoryFactory,
	objectStore storage.ObjectStore,
	eventPublisher *pktNats.Publisher,
) IWebhookService {
	return &webhookService{
		uowFactory:     uowFactory,
		objectStore:    objectStore,
		eventPublisher: eventPublisher,
	}
}

// HandlePostCall stores the call recording delivered by the voice provider
// and links it to the matching session. Unknown conversation ids are
// acknowledged without a write so the provider stops redelivering.
func (c *webhookService) HandlePostCall(ctx context.Context, req *dto.ConvaiWebhookRequest) error {
	if req.Type != webhookTypePostCallAudio {
		fmt.Printf("[INFO] Ignoring webhook type %q\n", req.Type)
		return nil
	}

	if req.Data.ConversationId == "" {
		return serverutils.NewBadRequest("webhook payload has no conversation_id")
	}
	if req.Data.FullAudio == "" {
		return serverutils.NewBadRequest("webhook payload has no audio")
	}

	audio, err := base64.StdEncoding.DecodeString(req.Data.FullAudio)
	if err != nil {
		return serverutils.NewBadRequest("webhook audio is not valid base64")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByConversationID{ConversationID: req.Data.ConversationId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		fmt.Printf("[WARN] Webhook for unknown conversation %s, dropping audio\n", req.Data.ConversationId)
		return nil
	}

	if c.objectStore == nil {
		// Storage never came up at boot. Ack so the provider stops
		// redelivering, the recording is lost either way.
		fmt.Printf("[WARN] Object storage unavailable, dropping recording for conversation %s\n", req.Data.ConversationId)
		return nil
	}

	key := fmt.Sprintf("recordings/audio/%s-%d.mp3", session.Id, time.Now().Unix())
	audioURL, err := c.objectStore.Upload(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return err
	}

	if err := uow.SessionRepository().SetRecording(ctx, session.Id, audioURL, int64(len(audio))); err != nil {
		return err
	}

	if c.eventPublisher != nil {
		evt := events.New(events.TypeRecordingLinked, map[string]interface{}{
			"session_id":  session.Id,
			"employee_id": session.EmployeeId,
			"company_id":  session.CompanyId,
			"audio_url":   audioURL,
		})
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish RECORDING_LINKED event: %v\n", err)
		}
	}

	return nil
}
