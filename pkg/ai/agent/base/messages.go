package base

import (
	"strings"

	"github.com/cloudposse/fngen/pkg/ai/types"
)

// SplitSystemMessages separates system messages from the conversation turns.
// Providers with a dedicated system field (Anthropic, Bedrock, Gemini) send the
// joined system text there and the remaining turns as messages.
func SplitSystemMessages(messages []types.Message) (system string, turns []types.Message) {
	var systemParts []string
	turns = make([]types.Message, 0, len(messages))

	for _, msg := range messages {
		if msg.Role == types.RoleSystem {
			if msg.Content != "" {
				systemParts = append(systemParts, msg.Content)
			}
			continue
		}
		turns = append(turns, msg)
	}

	return strings.Join(systemParts, "\n\n"), turns
}
