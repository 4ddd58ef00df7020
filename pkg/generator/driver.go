package generator

import (
	"context"
	"strings"

	errUtils "github.com/cloudposse/fngen/errors"
	"github.com/cloudposse/fngen/pkg/ai"
	log "github.com/cloudposse/fngen/pkg/logger"
)

// Driver runs the implement, document and test steps against a completion client.
// A Driver holds no per-run state and may be reused; each Generate call owns its
// own Conversation.
type Driver struct {
	client       ai.Client
	language     Language
	systemPrompt string
	observer     Observer
}

// Option configures a Driver.
type Option func(*Driver)

// WithObserver sets the observer that receives progress events.
func WithObserver(observer Observer) Option {
	return func(d *Driver) {
		if observer != nil {
			d.observer = observer
		}
	}
}

// WithSystemPrompt replaces the language's default system prompt.
// An empty prompt keeps the default.
func WithSystemPrompt(prompt string) Option {
	return func(d *Driver) {
		if strings.TrimSpace(prompt) != "" {
			d.systemPrompt = prompt
		}
	}
}

// NewDriver creates a Driver for lang.
func NewDriver(client ai.Client, lang Language, opts ...Option) *Driver {
	d := &Driver{
		client:       client,
		language:     lang,
		systemPrompt: SystemPrompt(lang),
		observer:     NopObserver{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Generate builds the function described by description in three steps.
//
// When a completion request fails, Generate returns the partial result holding
// every step that completed, together with an error marked ErrCompletionFailed.
// No later step is attempted.
func (d *Driver) Generate(ctx context.Context, description string) (*Result, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errUtils.ErrEmptyDescription
	}

	result := &Result{Completed: StageInit}
	conversation := NewConversation(d.systemPrompt)

	for _, s := range steps {
		code, err := d.runStep(ctx, conversation, s, description)
		if err != nil {
			return result, err
		}
		result.record(s.stage, code)
	}
	result.Completed = StageDone

	d.observer.Finished(result, conversation.Messages())
	return result, nil
}

// runStep appends the step instruction, asks the model and appends the
// normalized assistant turn. It returns the extracted code.
func (d *Driver) runStep(ctx context.Context, conversation *Conversation, s step, description string) (string, error) {
	d.observer.StepStarted(StepInfo{Stage: s.stage, Title: s.title, Goal: s.goal(d.language)})

	if err := conversation.AppendUser(s.prompt(d.language, description)); err != nil {
		return "", err
	}

	log.Debug("Sending completion request", "stage", s.stage, "messages", conversation.Len(), "model", d.client.GetModel())

	response, err := d.client.SendMessageWithHistory(ctx, conversation.Messages())
	if err != nil {
		return "", errUtils.Build(errUtils.ErrCompletionFailed).
			WithCause(err).
			WithHint("Please check your API key and try again.").
			WithContext("stage", s.stage.String()).
			WithContext("model", d.client.GetModel()).
			Err()
	}
	d.observer.ResponseReceived(s.stage, response)

	code := ExtractCode(response)
	if strings.Count(response, Fence) < 2 {
		log.Debug("No fenced block in response, using raw text", "stage", s.stage)
	}
	log.Trace("Extracted code", "stage", s.stage, "bytes", len(code))

	if err := conversation.AppendAssistant(FormatTurn(code, d.language.Tag)); err != nil {
		return "", err
	}
	d.observer.StepCompleted(s.stage, code)

	return code, nil
}
