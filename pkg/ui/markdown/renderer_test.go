package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer(WithWidth(60))
	require.NoError(t, err)
	assert.Equal(t, 60, r.width)

	out, err := r.Render("Here is the function:\n\n```python\ndef add(a, b):\n    return a + b\n```\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Here is the function:")
	assert.Contains(t, out, "add")
}

func TestWithWidth_IgnoresNonPositive(t *testing.T) {
	r, err := NewRenderer(WithWidth(0))
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, r.width)
}
