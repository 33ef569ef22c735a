package voice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(serverURL, "test-key")
	// No sleeping in tests.
	c.backoff = func(attempt int) time.Duration { return 0 }
	return c
}

func TestGetConversationWithRetry_EventuallySucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"conversation_id":"conv_1","agent_id":"agent_1","status":"done","transcript":[{"role":"agent","message":"hi","time_in_call_secs":0.5}]}`))
	}))
	defer srv.Close()

	conv, err := newTestClient(srv.URL).GetConversationWithRetry(context.Background(), "conv_1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if conv.ConversationID != "conv_1" {
		t.Errorf("conversation_id = %q, want conv_1", conv.ConversationID)
	}
	if len(conv.Transcript) != 1 || conv.Transcript[0].Role != "agent" {
		t.Errorf("unexpected transcript: %+v", conv.Transcript)
	}
}

func TestGetConversationWithRetry_ExhaustsRetries(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetConversationWithRetry(context.Background(), "conv_1", 3)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !errors.Is(err, ErrTranscriptUnavailable) {
		t.Errorf("error = %v, want ErrTranscriptUnavailable", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestGetConversationWithRetry_NetworkErrorIsRetryable(t *testing.T) {
	// Closed server, every attempt fails at the transport layer.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).GetConversationWithRetry(context.Background(), "conv_1", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrTranscriptUnavailable) {
		t.Errorf("error = %v, want ErrTranscriptUnavailable wrap on network failure", err)
	}
}

func TestDefaultBackoffDoubles(t *testing.T) {
	c := NewClient("http://localhost", "test-key")
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
	for attempt, w := range want {
		if got := c.backoff(attempt); got != w {
			t.Errorf("backoff(%d) = %v, want %v", attempt, got, w)
		}
	}
}

func TestGetConversationWithRetry_NonRetryableFailsFast(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad conversation id"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetConversationWithRetry(context.Background(), "bad", 5)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Retryable {
		t.Error("400 should not be retryable")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retries)", calls)
	}
}

func TestDo_SendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("xi-api-key")
		w.Write([]byte(`{"token":"tok_123"}`))
	}))
	defer srv.Close()

	token, err := newTestClient(srv.URL).ConversationToken(context.Background(), "agent_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("xi-api-key = %q, want test-key", gotKey)
	}
	if token != "tok_123" {
		t.Errorf("token = %q, want tok_123", token)
	}
}

func TestGetConversationWithRetry_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	c.backoff = func(attempt int) time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetConversationWithRetry(ctx, "conv_1", 5)
	if err == nil {
		t.Fatal("expected context error")
	}
}
