package responses

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

const assistantCue = "Assistant:"

// FlattenTranscript writes the whole log as one prompt, one "<Label>: <text>" line
// per message, and ends with an open assistant line for the model to complete.
func FlattenTranscript(messages []entity.Message) string {
	lines := make([]string, 0, len(messages)+1)
	for _, msg := range messages {
		lines = append(lines, msg.Role.Label()+": "+msg.Content)
	}
	lines = append(lines, assistantCue)

	return strings.Join(lines, "\n")
}
