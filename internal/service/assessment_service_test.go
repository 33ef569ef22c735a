package service

import (
	"testing"

	"ai-training-be/internal/entity"
)

func TestCountExchanges(t *testing.T) {
	assistant := func(content string) entity.TranscriptTurn {
		return entity.TranscriptTurn{Role: entity.TranscriptRoleAssistant, Content: content}
	}
	user := func(content string) entity.TranscriptTurn {
		return entity.TranscriptTurn{Role: entity.TranscriptRoleUser, Content: content}
	}

	tests := []struct {
		name       string
		transcript []entity.TranscriptTurn
		want       int
	}{
		{
			name:       "empty transcript",
			transcript: nil,
			want:       0,
		},
		{
			name: "question with substantive answer",
			transcript: []entity.TranscriptTurn{
				assistant("What would you say to the customer?"),
				user("I would apologize first"),
			},
			want: 1,
		},
		{
			name: "assistant statement does not count",
			transcript: []entity.TranscriptTurn{
				assistant("Let's begin the scenario."),
				user("Okay sounds good"),
			},
			want: 0,
		},
		{
			name: "one word reply does not count",
			transcript: []entity.TranscriptTurn{
				assistant("Are you ready to start?"),
				user("Yes"),
			},
			want: 0,
		},
		{
			name: "question at end of transcript does not count",
			transcript: []entity.TranscriptTurn{
				user("Hello there"),
				assistant("How would you handle a refund request?"),
			},
			want: 0,
		},
		{
			name: "multiple exchanges",
			transcript: []entity.TranscriptTurn{
				assistant("How do you greet the customer?"),
				user("With a warm welcome"),
				assistant("Good. What do you do next?"),
				user("Ask about their issue"),
				assistant("And if they are angry?"),
				user("Stay calm"),
			},
			want: 3,
		},
		{
			name: "consecutive assistant questions count once",
			transcript: []entity.TranscriptTurn{
				assistant("Ready?"),
				assistant("What is step one?"),
				user("Listen to the customer"),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountExchanges(tt.transcript); got != tt.want {
				t.Errorf("CountExchanges() = %d, want %d", got, tt.want)
			}
		})
	}
}
