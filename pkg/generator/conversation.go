package generator

import (
	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/types"
)

// Conversation is the append-only message history of a single generation run.
// It opens with one system message; after that user and assistant turns alternate,
// starting with the user.
type Conversation struct {
	messages []types.Message
}

// NewConversation starts a conversation with the given system prompt.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		messages: []types.Message{types.NewSystemMessage(systemPrompt)},
	}
}

// AppendUser appends a user turn. It fails when the previous turn was also a user turn.
func (c *Conversation) AppendUser(content string) error {
	return c.append(types.NewUserMessage(content))
}

// AppendAssistant appends an assistant turn. It must follow a user turn.
func (c *Conversation) AppendAssistant(content string) error {
	return c.append(types.NewAssistantMessage(content))
}

func (c *Conversation) append(msg types.Message) error {
	if expected := c.nextRole(); msg.Role != expected {
		return errUtils.Build(errUtils.ErrInvalidRoleOrder).
			WithContext("expected", expected.String()).
			WithContext("got", msg.Role.String()).
			WithContext("position", len(c.messages)).
			Err()
	}

	c.messages = append(c.messages, msg)
	return nil
}

func (c *Conversation) nextRole() types.Role {
	if c.messages[len(c.messages)-1].Role == types.RoleUser {
		return types.RoleAssistant
	}
	return types.RoleUser
}

// Messages returns a copy of the history, safe to hand to a completion client.
func (c *Conversation) Messages() []types.Message {
	out := make([]types.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages including the system message.
func (c *Conversation) Len() int {
	return len(c.messages)
}
