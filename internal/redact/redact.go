// Package redact scrubs client-supplied text before it is written to logs.
// Values arriving in URLs and headers are echoed by error messages; this
// package masks anything resembling a credential or personal data and bounds
// the length of what is kept.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	TruncationMarker              = "...[TRUNCATED]"
)

// MaxValueLength is the number of runes of a client value kept by Value.
const MaxValueLength = 64

// maxStringLength bounds the output of String.
const maxStringLength = 512

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Applied in order; the JWT rule runs before the generic key rule so tokens
// keep their more specific placeholder.
var rules = []rule{
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://[^@/\s]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
}

// String masks sensitive fragments of input and bounds its length.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return truncate(result, maxStringLength)
}

// Error redacts an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Value redacts a single client-supplied value, keeping at most
// MaxValueLength runes of it.
func Value(v string) string {
	return truncate(String(v), MaxValueLength)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + TruncationMarker
}
