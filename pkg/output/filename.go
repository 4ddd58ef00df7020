package output

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultSuffix is appended to the sanitized description.
	DefaultSuffix = "_complete"
	// DefaultMaxNameLength bounds the sanitized description, in runes.
	DefaultMaxNameLength = 40
	// FallbackName is used when nothing of the description survives sanitizing.
	FallbackName = "function"
)

// Filename derives the output file name from a function description.
//
// The description is lowercased, accents are folded ("é" -> "e"), everything but
// letters, digits and whitespace is dropped, whitespace becomes "_", the result is
// cut to maxLen runes and stripped of leading and trailing "_". suffix and ext are
// then appended: "calculates the factorial" -> "calculates_the_factorial_complete.py".
func Filename(description, suffix, ext string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxNameLength
	}

	folded := foldAccents(strings.ToLower(description))

	var b strings.Builder
	count := 0
	for _, r := range folded {
		if count >= maxLen {
			break
		}
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		default:
			continue
		}
		count++
	}

	name := strings.Trim(b.String(), "_")
	if name == "" {
		name = FallbackName
	}
	return name + suffix + ext
}

// foldAccents strips combining marks after canonical decomposition.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
