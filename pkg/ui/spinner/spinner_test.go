package spinner

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManualSpinnerModel(t *testing.T) {
	t.Run("creates manual model with correct progress message", func(t *testing.T) {
		model := newManualSpinnerModel("Waiting for gpt-4o-mini")

		assert.Equal(t, "Waiting for gpt-4o-mini", model.progressMsg)
		assert.Empty(t, model.finalMsg)
		assert.False(t, model.done)
		assert.False(t, model.success)
	})
}

func TestManualSpinnerModel_Init(t *testing.T) {
	t.Run("returns spinner tick command", func(t *testing.T) {
		model := newManualSpinnerModel("test")
		assert.NotNil(t, model.Init())
	})
}

func TestManualSpinnerModel_Update(t *testing.T) {
	t.Run("handles ctrl+c key", func(t *testing.T) {
		model := newManualSpinnerModel("test")

		_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.NotNil(t, cmd) // tea.Quit
	})

	t.Run("handles manual stop with success message", func(t *testing.T) {
		model := newManualSpinnerModel("test")

		updatedModel, cmd := model.Update(manualStopMsg{message: "Response received", success: true})
		assert.NotNil(t, cmd)

		m, ok := updatedModel.(manualSpinnerModel)
		require.True(t, ok)
		assert.True(t, m.done)
		assert.Equal(t, "Response received", m.finalMsg)
		assert.True(t, m.success)
	})

	t.Run("handles manual stop with failure", func(t *testing.T) {
		model := newManualSpinnerModel("test")

		updatedModel, _ := model.Update(manualStopMsg{message: "Request failed", success: false})

		m, ok := updatedModel.(manualSpinnerModel)
		require.True(t, ok)
		assert.True(t, m.done)
		assert.False(t, m.success)
	})

	t.Run("handles spinner tick message", func(t *testing.T) {
		model := newManualSpinnerModel("test")

		updatedModel, cmd := model.Update(spinner.TickMsg{})
		assert.NotNil(t, cmd) // next tick

		m, ok := updatedModel.(manualSpinnerModel)
		require.True(t, ok)
		assert.False(t, m.done)
	})

	t.Run("ignores unknown messages", func(t *testing.T) {
		model := newManualSpinnerModel("test")

		updatedModel, cmd := model.Update(struct{}{})
		assert.Nil(t, cmd)

		m, ok := updatedModel.(manualSpinnerModel)
		require.True(t, ok)
		assert.False(t, m.done)
	})
}

func TestManualSpinnerModel_View(t *testing.T) {
	t.Run("shows progress message when not done", func(t *testing.T) {
		model := newManualSpinnerModel("Waiting")
		assert.Contains(t, model.View(), "Waiting")
	})

	t.Run("shows final message when done", func(t *testing.T) {
		model := newManualSpinnerModel("Waiting")
		model.done = true
		model.success = true
		model.finalMsg = "Done"

		view := model.View()
		assert.Contains(t, view, "Done")
		assert.NotContains(t, view, "Waiting")
	})

	t.Run("clears the line when done without a message", func(t *testing.T) {
		model := newManualSpinnerModel("Waiting")
		model.done = true

		assert.Empty(t, model.View())
	})
}

func TestSpinner_NonTTY(t *testing.T) {
	var out bytes.Buffer
	s := New("Waiting", &out, false)

	s.Start()
	s.Stop("Done", true)

	assert.Empty(t, out.String())
	assert.Nil(t, s.program)
}
