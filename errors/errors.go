package errors

import (
	"github.com/cockroachdb/errors"
)

// Generation errors.
var (
	ErrCompletionFailed    = errors.New("completion request failed")
	ErrFileWrite           = errors.New("failed to write generated code to file")
	ErrEmptyDescription    = errors.New("function description is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidRoleOrder    = errors.New("message role breaks user/assistant alternation")
	ErrUserAborted         = errors.New("aborted by user")
	ErrInterrupted         = errors.New("interrupted")
)

// AI provider errors.
var (
	ErrAIAPIKeyNotFound       = errors.New("API key not found in environment variable")
	ErrAIUnsupportedProvider  = errors.New("unsupported AI provider")
	ErrAIProviderNotSet       = errors.New("no AI provider configured")
	ErrAISendMessage          = errors.New("failed to send message to AI provider")
	ErrAINoResponseChoices    = errors.New("no response choices returned from AI provider")
	ErrAINoResponseCandidates = errors.New("no response candidates returned from AI provider")
	ErrAINoResponseContent    = errors.New("AI provider returned an empty response")
	ErrAIBaseURLRequired      = errors.New("base_url is required for this AI provider")
	ErrAIClientCreate         = errors.New("failed to create AI client")
)

// Configuration errors.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrReadConfig      = errors.New("failed to read configuration")
	ErrParseConfig     = errors.New("failed to parse configuration")
)
