package voice

import (
	"strings"

	"ai-training-be/internal/entity"
)

// MapTranscript converts the external turn vocabulary into the internal
// transcript shape: "agent" becomes "assistant", second-scale timestamps
// become milliseconds, and turns with empty content are dropped.
func MapTranscript(raw []RawTurn) []entity.TranscriptTurn {
	turns := make([]entity.TranscriptTurn, 0, len(raw))
	for _, t := range raw {
		content := strings.TrimSpace(t.Message)
		if content == "" {
			continue
		}

		role := t.Role
		if role == "agent" {
			role = entity.TranscriptRoleAssistant
		}

		turns = append(turns, entity.TranscriptTurn{
			Role:      role,
			Content:   content,
			Timestamp: int64(t.TimeInCall * 1000),
		})
	}
	return turns
}
