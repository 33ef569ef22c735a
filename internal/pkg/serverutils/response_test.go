package serverutils

import (
	"encoding/json"
	"testing"
)

func TestErrorEnvelopeShape(t *testing.T) {
	tests := []struct {
		name     string
		envelope ErrResponse
		want     string
	}{
		{
			name:     "plain error",
			envelope: ErrorResponse(404, "session not found"),
			want:     `{"success":false,"error":"session not found","code":404}`,
		},
		{
			name:     "retryable error",
			envelope: RetryableErrorResponse(503, "transcript not available yet, retry later"),
			want:     `{"success":false,"error":"transcript not available yet, retry later","code":503,"retryable":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.envelope)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(raw) != tt.want {
				t.Errorf("envelope = %s, want %s", raw, tt.want)
			}

			// The error field must stay a plain string for the dashboard.
			var decoded struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(raw, &decoded); err != nil {
				t.Fatalf("error field is not a string: %v", err)
			}
		})
	}
}

func TestSuccessEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(SuccessResponse("Session started", map[string]bool{"created": true}))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"success":true,"message":"Session started","data":{"created":true}}`
	if string(raw) != want {
		t.Errorf("envelope = %s, want %s", raw, want)
	}
}
