package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai/types"
)

func TestConversation_Alternation(t *testing.T) {
	c := NewConversation("system prompt")
	require.Equal(t, 1, c.Len())

	require.NoError(t, c.AppendUser("one"))
	require.NoError(t, c.AppendAssistant("two"))
	require.NoError(t, c.AppendUser("three"))

	assert.Equal(t, 4, c.Len())
	messages := c.Messages()
	assert.Equal(t, types.RoleSystem, messages[0].Role)
	assert.Equal(t, types.RoleUser, messages[1].Role)
	assert.Equal(t, types.RoleAssistant, messages[2].Role)
	assert.Equal(t, types.RoleUser, messages[3].Role)
}

func TestConversation_RejectsOutOfOrderTurns(t *testing.T) {
	c := NewConversation("system prompt")

	err := c.AppendAssistant("too early")
	assert.ErrorIs(t, err, errUtils.ErrInvalidRoleOrder)

	require.NoError(t, c.AppendUser("question"))
	err = c.AppendUser("second question")
	assert.ErrorIs(t, err, errUtils.ErrInvalidRoleOrder)

	assert.Equal(t, 2, c.Len())
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	c := NewConversation("system prompt")
	require.NoError(t, c.AppendUser("question"))

	messages := c.Messages()
	messages[1].Content = "mutated"

	assert.Equal(t, "question", c.Messages()[1].Content)
}
