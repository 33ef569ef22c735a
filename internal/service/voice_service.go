package service

import (
	"context"
	"time"

	"ai-training-be/internal/dto"
	"ai-training-be/internal/pkg/serverutils"
	"ai-training-be/pkg/voice"

	gocache "github.com/patrickmn/go-cache"
)

type IVoiceService interface {
	ConversationToken(ctx context.Context, agentId string) (*dto.ConversationTokenResponse, error)
	TextToSpeech(ctx context.Context, req *dto.TextToSpeechRequest) ([]byte, error)
	SpeechToText(ctx context.Context, audio []byte, contentType string) (*dto.SpeechToTextResponse, error)
}

type voiceService struct {
	client         *voice.Client
	defaultAgentId string
	defaultVoiceId string
	tokenCache     *gocache.Cache
}

func NewVoiceService(client *voice.Client, defaultAgentId, defaultVoiceId string) IVoiceService {
	return &voiceService{
		client:         client,
		defaultAgentId: defaultAgentId,
		defaultVoiceId: defaultVoiceId,
		// Provider tokens are valid for ~15 minutes, keep a margin
		tokenCache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (c *voiceService) ConversationToken(ctx context.Context, agentId string) (*dto.ConversationTokenResponse, error) {
	if agentId == "" {
		agentId = c.defaultAgentId
	}
	if agentId == "" {
		return nil, serverutils.NewBadRequest("no voice agent configured")
	}

	if cached, found := c.tokenCache.Get(agentId); found {
		return &dto.ConversationTokenResponse{
			Token:   cached.(string),
			AgentId: agentId,
		}, nil
	}

	token, err := c.client.ConversationToken(ctx, agentId)
	if err != nil {
		return nil, err
	}

	c.tokenCache.Set(agentId, token, gocache.DefaultExpiration)

	return &dto.ConversationTokenResponse{
		Token:   token,
		AgentId: agentId,
	}, nil
}

func (c *voiceService) TextToSpeech(ctx context.Context, req *dto.TextToSpeechRequest) ([]byte, error) {
	voiceId := req.VoiceId
	if voiceId == "" {
		voiceId = c.defaultVoiceId
	}
	return c.client.TextToSpeech(ctx, voiceId, req.Text)
}

func (c *voiceService) SpeechToText(ctx context.Context, audio []byte, contentType string) (*dto.SpeechToTextResponse, error) {
	if len(audio) == 0 {
		return nil, serverutils.NewBadRequest("no audio provided")
	}

	text, err := c.client.SpeechToText(ctx, audio, contentType)
	if err != nil {
		return nil, err
	}

	return &dto.SpeechToTextResponse{Text: text}, nil
}
