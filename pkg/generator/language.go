package generator

import (
	"sort"
	"strings"

	errUtils "github.com/cloudposse/fngen/errors"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "python"

// Language describes a target programming language and how its tests are written.
type Language struct {
	// Name is the lookup key used in configuration and on the command line.
	Name string
	// DisplayName is used in prompts.
	DisplayName string
	// Tag is the fence info string of every normalized assistant turn.
	Tag string
	// Extension of the saved file, including the dot.
	Extension string
	// TestFramework names the framework requested in the test step.
	TestFramework string
	// TestLayout lists what the final code must contain besides the function.
	TestLayout string
}

var languages = map[string]Language{
	"python": {
		Name:          "python",
		DisplayName:   "Python",
		Tag:           "python",
		Extension:     ".py",
		TestFramework: "unittest",
		TestLayout:    "the function, imports, test class, and main block to run tests",
	},
	"go": {
		Name:          "go",
		DisplayName:   "Go",
		Tag:           "go",
		Extension:     ".go",
		TestFramework: "testing package",
		TestLayout:    "the package clause, imports, the function, and table-driven Test functions",
	},
	"javascript": {
		Name:          "javascript",
		DisplayName:   "JavaScript",
		Tag:           "javascript",
		Extension:     ".js",
		TestFramework: "Jest",
		TestLayout:    "the function, its export, and a describe block with the Jest tests",
	},
	"typescript": {
		Name:          "typescript",
		DisplayName:   "TypeScript",
		Tag:           "typescript",
		Extension:     ".ts",
		TestFramework: "Jest",
		TestLayout:    "the typed function, its export, and a describe block with the Jest tests",
	},
	"rust": {
		Name:          "rust",
		DisplayName:   "Rust",
		Tag:           "rust",
		Extension:     ".rs",
		TestFramework: "built-in Rust test harness",
		TestLayout:    "the function and a #[cfg(test)] mod tests block",
	},
}

// LookupLanguage returns the language registered under name (case-insensitive).
// An empty name selects DefaultLanguage.
func LookupLanguage(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultLanguage
	}

	lang, ok := languages[key]
	if !ok {
		return Language{}, errUtils.Build(errUtils.ErrUnsupportedLanguage).
			WithHintf("Supported languages: %s", strings.Join(LanguageNames(), ", ")).
			WithContext("language", name).
			Err()
	}
	return lang, nil
}

// LanguageNames returns the sorted names of all supported languages.
func LanguageNames() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
