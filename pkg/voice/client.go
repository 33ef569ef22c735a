package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrTranscriptUnavailable marks a retry budget exhausted on a retryable
// condition, transient API statuses or network errors alike. Callers check
// it with errors.Is to surface the failure as retryable.
var ErrTranscriptUnavailable = errors.New("transcript not available")

// APIError is a non-2xx response from the voice API.
type APIError struct {
	StatusCode int
	Body       string
	Retryable  bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("voice api error, status %d, body %s", e.StatusCode, e.Body)
}

// Conversation is the remote conversation record with its raw transcript.
type Conversation struct {
	ConversationID string    `json:"conversation_id"`
	AgentID        string    `json:"agent_id"`
	Status         string    `json:"status"`
	Transcript     []RawTurn `json:"transcript"`
	Metadata       struct {
		CallDurationSecs int `json:"call_duration_secs"`
	} `json:"metadata"`
}

// RawTurn is one turn in the external vocabulary ("agent"/"user" roles,
// second-scale timestamps).
type RawTurn struct {
	Role       string  `json:"role"`
	Message    string  `json:"message"`
	TimeInCall float64 `json:"time_in_call_secs"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// backoff computes the sleep before retry n. Overridable in tests.
	backoff func(attempt int) time.Duration
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff: func(attempt int) time.Duration {
			return time.Duration(1<<attempt) * time.Second
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Body:       string(resBody),
			// 401 can be a propagation delay on fresh conversations, 404
			// means the transcript has not materialized yet.
			Retryable: res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusNotFound,
		}
	}

	return resBody, nil
}

// GetConversation fetches the conversation record once, no retries.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/convai/conversations/"+url.PathEscape(conversationID), nil, "")
	if err != nil {
		return nil, err
	}

	var conv Conversation
	if err := json.Unmarshal(body, &conv); err != nil {
		return nil, fmt.Errorf("decode conversation: %w", err)
	}
	return &conv, nil
}

// GetConversationWithRetry fetches the conversation, retrying retryable
// statuses and network errors up to maxRetries with 2^attempt seconds
// backoff. Exhausting the budget wraps ErrTranscriptUnavailable so callers
// can mark the failure retryable.
func (c *Client) GetConversationWithRetry(ctx context.Context, conversationID string, maxRetries int) (*Conversation, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		conv, err := c.GetConversation(ctx, conversationID)
		if err == nil {
			return conv, nil
		}
		lastErr = err

		if apiErr, ok := err.(*APIError); ok && !apiErr.Retryable {
			return nil, err
		}
		if attempt == maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoff(attempt)):
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrTranscriptUnavailable, maxRetries, lastErr)
}

// DeleteConversation removes the remote conversation. Best effort for
// session cascade deletes.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/v1/convai/conversations/"+url.PathEscape(conversationID), nil, "")
	return err
}

// ConversationToken issues a short-lived client token for the given agent.
func (c *Client) ConversationToken(ctx context.Context, agentID string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/convai/conversation/token?agent_id="+url.QueryEscape(agentID), nil, "")
	if err != nil {
		return "", err
	}

	var res TokenResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	return res.Token, nil
}

// TextToSpeech synthesizes text with the given voice and returns raw mp3.
func (c *Client) TextToSpeech(ctx context.Context, voiceID, text string) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
	})
	if err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, "/v1/text-to-speech/"+url.PathEscape(voiceID), bytes.NewBuffer(payload), "application/json")
}

// SpeechToText transcribes the supplied audio bytes.
func (c *Client) SpeechToText(ctx context.Context, audio []byte, contentType string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/v1/speech-to-text", bytes.NewReader(audio), contentType)
	if err != nil {
		return "", err
	}

	var res struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decode stt response: %w", err)
	}
	return res.Text, nil
}
