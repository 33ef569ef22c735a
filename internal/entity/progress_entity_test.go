package entity

import "testing"

func TestTopicProgressMastery(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		correct  int
		wantMast bool
	}{
		{name: "no attempts", total: 0, correct: 0, wantMast: false},
		{name: "perfect but below minimum attempts", total: 2, correct: 2, wantMast: false},
		{name: "minimum attempts all correct", total: 3, correct: 3, wantMast: true},
		{name: "below threshold", total: 4, correct: 3, wantMast: false},
		{name: "exactly at threshold", total: 5, correct: 4, wantMast: true},
		{name: "many attempts above threshold", total: 10, correct: 9, wantMast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := TopicProgress{TotalAttempts: tt.total, CorrectAttempts: tt.correct}
			if got := p.IsMastered(); got != tt.wantMast {
				t.Errorf("IsMastered() with %d/%d = %v, want %v", tt.correct, tt.total, got, tt.wantMast)
			}
		})
	}
}

func TestMasteryScoreNoAttempts(t *testing.T) {
	p := TopicProgress{}
	if score := p.MasteryScore(); score != 0 {
		t.Errorf("MasteryScore() = %v, want 0", score)
	}
}
