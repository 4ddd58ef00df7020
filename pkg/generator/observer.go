package generator

import (
	"github.com/cloudposse/fngen/pkg/ai/types"
)

// StepInfo describes a step as it starts.
type StepInfo struct {
	Stage Stage
	Title string
	Goal  string
}

// Observer receives progress events from a Driver. Calls happen on the
// goroutine running Generate, in stage order.
type Observer interface {
	// StepStarted is called before the completion request of a step is sent.
	StepStarted(info StepInfo)
	// ResponseReceived carries the raw model text of a step.
	ResponseReceived(stage Stage, response string)
	// StepCompleted carries the code extracted for a step.
	StepCompleted(stage Stage, code string)
	// Finished is called once with the final result and the normalized history.
	Finished(result *Result, history []types.Message)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) StepStarted(StepInfo)              {}
func (NopObserver) ResponseReceived(Stage, string)    {}
func (NopObserver) StepCompleted(Stage, string)       {}
func (NopObserver) Finished(*Result, []types.Message) {}
