package generator

import (
	"regexp"
	"strings"
)

// Fence is the marker that opens and closes a fenced code block.
const Fence = "```"

// languageTagPattern matches a fence info string such as "python", "c++" or "objective-c".
var languageTagPattern = regexp.MustCompile(`^[A-Za-z0-9_+#.\-]+$`)

// infoAttributePattern matches trailing info string attributes like title="x.py" or {linenos=true}.
var infoAttributePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_\-]*=\S+|\{.*\})$`)

// ExtractCode returns the code held in the first fenced block of text.
//
// The content between the first two fence markers is taken, a single leading
// language tag line is dropped and the result is trimmed. Text without a
// paired fence is returned trimmed and otherwise unchanged.
func ExtractCode(text string) string {
	parts := strings.Split(text, Fence)
	if len(parts) < 3 {
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(stripLanguageTag(parts[1]))
}

// stripLanguageTag drops the first line of block when it is a fence info string:
// a bare language tag, optionally followed by key=value attributes.
// A tag must be followed by a newline, so single-line blocks like "```x```" are kept.
func stripLanguageTag(block string) string {
	firstLine, rest, found := strings.Cut(block, "\n")
	if !found {
		return block
	}

	if isInfoString(firstLine) {
		return rest
	}
	return block
}

func isInfoString(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 || !languageTagPattern.MatchString(fields[0]) {
		return false
	}

	for _, field := range fields[1:] {
		if !infoAttributePattern.MatchString(field) {
			return false
		}
	}
	return true
}
