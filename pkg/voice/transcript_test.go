package voice

import (
	"testing"

	"ai-training-be/internal/entity"
)

func TestMapTranscript(t *testing.T) {
	tests := []struct {
		name      string
		raw       []RawTurn
		wantTurns []entity.TranscriptTurn
	}{
		{
			name:      "empty transcript",
			raw:       []RawTurn{},
			wantTurns: []entity.TranscriptTurn{},
		},
		{
			name: "agent role becomes assistant",
			raw: []RawTurn{
				{Role: "agent", Message: "Hello, how can I help?", TimeInCall: 1.5},
			},
			wantTurns: []entity.TranscriptTurn{
				{Role: "assistant", Content: "Hello, how can I help?", Timestamp: 1500},
			},
		},
		{
			name: "user role passes through",
			raw: []RawTurn{
				{Role: "user", Message: "I have a complaint", TimeInCall: 3},
			},
			wantTurns: []entity.TranscriptTurn{
				{Role: "user", Content: "I have a complaint", Timestamp: 3000},
			},
		},
		{
			name: "empty and whitespace turns are dropped",
			raw: []RawTurn{
				{Role: "agent", Message: "", TimeInCall: 0},
				{Role: "user", Message: "   ", TimeInCall: 1},
				{Role: "user", Message: "still here", TimeInCall: 2},
			},
			wantTurns: []entity.TranscriptTurn{
				{Role: "user", Content: "still here", Timestamp: 2000},
			},
		},
		{
			name: "content is trimmed",
			raw: []RawTurn{
				{Role: "agent", Message: "  padded  ", TimeInCall: 0.25},
			},
			wantTurns: []entity.TranscriptTurn{
				{Role: "assistant", Content: "padded", Timestamp: 250},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTranscript(tt.raw)

			if len(got) != len(tt.wantTurns) {
				t.Fatalf("turn count = %d, want %d", len(got), len(tt.wantTurns))
			}
			for i, want := range tt.wantTurns {
				if got[i] != want {
					t.Errorf("turn %d = %+v, want %+v", i, got[i], want)
				}
			}
		})
	}
}
