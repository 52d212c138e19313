// Package textutil bundles small text helpers shared by the generation
// pipeline: model-output cleanup, language detection and sheet reference
// normalization.
package textutil

import (
	"fmt"
	"regexp"
	"strings"
)

var cyrillicPattern = regexp.MustCompile(`[А-Яа-яЁё]`)

// HasCyrillic reports whether the text contains at least one Cyrillic letter.
// Model output without any is treated as a failed generation.
func HasCyrillic(text string) bool {
	return cyrillicPattern.MatchString(text)
}

// StripCodeFence removes a leading ```html fence and a trailing ``` fence
// that some models wrap their HTML output in.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// NormalizeSheetID accepts either a bare spreadsheet ID or a full
// https://docs.google.com/spreadsheets/d/<id>/... URL and returns the ID.
func NormalizeSheetID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("no sheet ID or Google Sheets URL given")
	}
	if idx := strings.Index(input, "spreadsheets/d/"); idx >= 0 {
		rest := input[idx+len("spreadsheets/d/"):]
		if slash := strings.IndexByte(rest, '/'); slash >= 0 {
			rest = rest[:slash]
		}
		if rest == "" {
			return "", fmt.Errorf("could not extract sheet ID from URL %q", input)
		}
		return rest, nil
	}
	return input, nil
}

// Truncate shortens s to at most n bytes for log and error messages.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
