package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := SplitText("short", 100, 10)
		if len(chunks) != 1 || chunks[0] != "short" {
			t.Errorf("chunks = %v, want [short]", chunks)
		}
	})

	t.Run("chunks overlap", func(t *testing.T) {
		text := strings.Repeat("a", 25)
		chunks := SplitText(text, 10, 4)

		if len(chunks) < 3 {
			t.Fatalf("chunk count = %d, want at least 3", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 10 {
				t.Errorf("chunk %d length = %d, exceeds chunk size", i, len(c))
			}
		}
	})

	t.Run("full text is covered", func(t *testing.T) {
		text := "The quick brown fox jumps over the lazy dog. " + strings.Repeat("More words here. ", 20)
		chunks := SplitText(text, 50, 10)

		joined := strings.Join(chunks, "")
		// With overlap the join is longer than the input, but the tail of
		// the original must appear in the final chunk.
		last := chunks[len(chunks)-1]
		if !strings.HasSuffix(text, last) {
			t.Error("final chunk does not end the original text")
		}
		if len(joined) < len(text) {
			t.Errorf("joined length = %d, shorter than input %d", len(joined), len(text))
		}
	})

	t.Run("breaks on word boundaries", func(t *testing.T) {
		text := "alpha beta gamma delta epsilon"
		chunks := SplitText(text, 12, 0)

		want := []string{"alpha beta ", "gamma delta ", "epsilon"}
		if len(chunks) != len(want) {
			t.Fatalf("chunks = %q, want %q", chunks, want)
		}
		for i := range want {
			if chunks[i] != want[i] {
				t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
			}
		}
	})

	t.Run("overlap larger than chunk size falls back", func(t *testing.T) {
		text := strings.Repeat("b", 30)
		chunks := SplitText(text, 10, 10)
		if len(chunks) != 3 {
			t.Errorf("chunk count = %d, want 3", len(chunks))
		}
	})
}
