package morfa

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CheckResult is the outcome of comparing a learner's answer against
// the expected form.
type CheckResult struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

// foldDiacritics removes combining marks while preserving the base
// characters, so "café" compares equal to "cafe".
func foldDiacritics(s string) string {
	// Chained transformers carry internal buffers, so build one per call
	// rather than sharing it between requests.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		return s
	}

	return folded
}

// NormalizeAnswer trims, casefolds and, when the catalog is configured
// accent-insensitive, strips diacritics.
func (c *Catalog) NormalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if c.StripDiacritics {
		s = foldDiacritics(s)
	}

	return s
}

// CheckAnswer compares the learner's answer with the expected inflected
// form and produces a human-readable message in the catalog's language.
func (c *Catalog) CheckAnswer(original, answer, feature string) CheckResult {
	if c.NormalizeAnswer(original) == c.NormalizeAnswer(answer) {
		message := c.CorrectMessage
		if message == "" {
			message = "Correct!"
		}

		return CheckResult{Correct: true, Message: message}
	}

	format := c.IncorrectFormat
	if format == "" {
		format = "Incorrect. The correct form is \"%s\""
	}

	message := fmt.Sprintf(format, original)
	if hint := c.Hints[feature]; hint != "" {
		message += " " + hint
	}

	return CheckResult{Correct: false, Message: message}
}
