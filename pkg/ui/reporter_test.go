package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudposse/fngen/pkg/ai/types"
	"github.com/cloudposse/fngen/pkg/generator"
)

func TestReporter_Steps(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, ReporterOptions{Language: "python"})

	r.StepStarted(generator.StepInfo{Stage: generator.StageDocument, Title: "Adding Documentation", Goal: "Add docstrings"})
	r.ResponseReceived(generator.StageDocument, "raw response that is hidden")
	r.StepCompleted(generator.StageDocument, "def f():\n    pass")

	text := out.String()
	assert.Contains(t, text, "📚 STEP 2: Adding Documentation")
	assert.Contains(t, text, "Goal: Add docstrings")
	assert.Contains(t, text, "✅ Added Documentation:\ndef f():\n    pass")
	assert.NotContains(t, text, "raw response")
	assert.NotContains(t, text, "\x1b[", "no ANSI escapes without color")
}

func TestReporter_VerboseShowsResponsesAndConversation(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, ReporterOptions{Verbose: true, Language: "python"})

	r.ResponseReceived(generator.StageImplement, "Here is ```python\nx = 1\n```")
	r.Finished(&generator.Result{}, []types.Message{
		types.NewSystemMessage("You are an expert Python programmer."),
		types.NewUserMessage(strings.Repeat("a", 150)),
	})

	text := out.String()
	assert.Contains(t, text, "Full LLM Response:\nHere is ```python\nx = 1\n```")
	assert.Contains(t, text, "🔍 DEBUG: Final Conversation")
	assert.Contains(t, text, "1. system: You are an expert Python programmer....")
	assert.Contains(t, text, "2. user: "+strings.Repeat("a", 100)+"...\n")
}

func TestReporter_SaveAndSummary(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, ReporterOptions{})

	r.Saving()
	r.Saved("adds_complete.py")
	r.SaveFailed(errors.New("permission denied"))
	r.Success(false)

	text := out.String()
	assert.Contains(t, text, "💾 SAVING RESULTS")
	assert.Contains(t, text, "✅ Saved complete function to: adds_complete.py")
	assert.Contains(t, text, "Warning: Could not save to file - permission denied")
	assert.Contains(t, text, "🎉 SUCCESS!")
	assert.NotContains(t, text, "Saved to file")
}

func TestReporter_IntroAndStart(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out, ReporterOptions{})

	r.Intro()
	r.Start("adds two numbers")
	r.Abort()

	text := out.String()
	assert.Contains(t, text, strings.Repeat("=", 50))
	assert.Contains(t, text, "🚀 Creating function: adds two numbers")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", preview("abc", 5))
	assert.Equal(t, "ab", preview("abc", 2))
	assert.Equal(t, "éé", preview("ééé", 2))
}

func TestHighlight(t *testing.T) {
	code := "def add(a, b):\n    return a + b"

	highlighted := Highlight(code, "python")
	assert.Contains(t, highlighted, "\x1b[")
	assert.Contains(t, highlighted, "add")

	assert.NotEmpty(t, Highlight("just some words", "no-such-language"))
}
