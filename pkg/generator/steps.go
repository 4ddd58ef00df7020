package generator

import (
	"fmt"
)

// Stage is a state of the generation run.
type Stage int

const (
	StageInit Stage = iota
	StageImplement
	StageDocument
	StageTest
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageImplement:
		return "implement"
	case StageDocument:
		return "document"
	case StageTest:
		return "test"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Number returns the 1-based step number of a working stage, or 0.
func (s Stage) Number() int {
	if s < StageImplement || s > StageTest {
		return 0
	}
	return int(s)
}

// step is one user instruction plus the model turn that answers it.
type step struct {
	stage  Stage
	title  string
	goal   func(lang Language) string
	prompt func(lang Language, description string) string
}

var steps = []step{
	{
		stage: StageImplement,
		title: "Generating Basic Function",
		goal: func(Language) string {
			return "Create a working function with core logic"
		},
		prompt: func(lang Language, description string) string {
			return fmt.Sprintf("Write a %s function that %s. Output the function in a %s%s code block%s.",
				lang.DisplayName, description, Fence, lang.Tag, Fence)
		},
	},
	{
		stage: StageDocument,
		title: "Adding Documentation",
		goal: func(Language) string {
			return "Add comprehensive docstrings and parameter descriptions"
		},
		prompt: func(lang Language, _ string) string {
			return fmt.Sprintf("Add comprehensive documentation to this function including: function description, "+
				"parameter descriptions with types, return value description, example usage, and edge cases. "+
				"Output the complete documented function in a %s%s code block%s.",
				Fence, lang.Tag, Fence)
		},
	},
	{
		stage: StageTest,
		title: "Adding Test Cases",
		goal: func(lang Language) string {
			return fmt.Sprintf("Add comprehensive %s test cases", lang.TestFramework)
		},
		prompt: func(lang Language, _ string) string {
			return fmt.Sprintf("Add comprehensive %s test cases to this code. Include tests for: basic functionality, "+
				"edge cases, error cases, and various input scenarios. Return the complete code with %s in a %s%s code block%s.",
				lang.TestFramework, lang.TestLayout, Fence, lang.Tag, Fence)
		},
	},
}

// SystemPrompt returns the default system prompt for lang.
func SystemPrompt(lang Language) string {
	return fmt.Sprintf("You are an expert %s programmer. Write clean, efficient functions based on user descriptions. "+
		"Always output code in %s%s code blocks%s.", lang.DisplayName, Fence, lang.Tag, Fence)
}
