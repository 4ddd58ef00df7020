package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fenced block with surrounding prose",
			input:    "foo ```python\nCODE\n``` bar",
			expected: "CODE",
		},
		{
			name:     "no fence returns trimmed text",
			input:    "  def f():\n    return 1\n\n",
			expected: "def f():\n    return 1",
		},
		{
			name:     "single fence marker is not a pair",
			input:    "here is ``` half a block",
			expected: "here is ``` half a block",
		},
		{
			name:     "untagged block",
			input:    "```\nx = 1\n```",
			expected: "x = 1",
		},
		{
			name:     "generic language tag",
			input:    "Sure!\n```go\nfunc F() {}\n```\nDone.",
			expected: "func F() {}",
		},
		{
			name:     "tag with symbols",
			input:    "```c++\nint main() {}\n```",
			expected: "int main() {}",
		},
		{
			name:     "windows line endings",
			input:    "```python\r\nprint(1)\r\n```",
			expected: "print(1)",
		},
		{
			name:     "only the first block is taken",
			input:    "```python\nfirst()\n```\nand\n```python\nsecond()\n```",
			expected: "first()",
		},
		{
			name:     "single line block keeps its content",
			input:    "run ```pytest``` now",
			expected: "pytest",
		},
		{
			name:     "first line with code is not a tag",
			input:    "```\nimport os\nprint(os.name)\n```",
			expected: "import os\nprint(os.name)",
		},
		{
			name:     "tag with trailing space",
			input:    "```python \nprint(1)\n```",
			expected: "print(1)",
		},
		{
			name:     "space between fence and tag",
			input:    "``` python\nprint(1)\n```",
			expected: "print(1)",
		},
		{
			name:     "tag with attributes",
			input:    "```python title=\"x.py\"\nprint(1)\n```",
			expected: "print(1)",
		},
		{
			name:     "tag with brace attributes",
			input:    "```go {linenos=true}\nfunc F() {}\n```",
			expected: "func F() {}",
		},
		{
			name:     "assignment on first line is code",
			input:    "```\nx = 1\ny = 2\n```",
			expected: "x = 1\ny = 2",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCode(tt.input))
		})
	}
}

func TestExtractCode_IdempotentOnFormattedTurns(t *testing.T) {
	inputs := []string{
		"foo ```python\ndef add(a, b):\n    return a + b\n``` bar",
		"plain text answer",
		"```rust\nfn main() {}\n```",
		"   padded   ",
	}

	for _, input := range inputs {
		extracted := ExtractCode(input)
		assert.Equal(t, extracted, ExtractCode(FormatTurn(extracted, "python")), "input %q", input)
	}
}

func TestFormatTurn_RoundTrip(t *testing.T) {
	codes := []string{
		"def f():\n    pass",
		"pass",
		"x",
		"import unittest\n\nclass T(unittest.TestCase):\n    pass\n\nif __name__ == '__main__':\n    unittest.main()",
	}

	for _, tag := range []string{"python", "go", ""} {
		for _, code := range codes {
			assert.Equal(t, code, ExtractCode(FormatTurn(code, tag)), "tag %q code %q", tag, code)
		}
	}
}

func TestFormatTurn(t *testing.T) {
	assert.Equal(t, "```python\nprint(1)\n```", FormatTurn("print(1)", "python"))
}
