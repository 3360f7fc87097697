package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySegments = regexp.MustCompile(`[^a-z0-9]+`)

// sensitiveSegments are key segments whose values never reach the log file.
var sensitiveSegments = map[string]bool{
	"secret":     true,
	"password":   true,
	"token":      true,
	"key":        true,
	"auth":       true,
	"credential": true,
	"cookie":     true,
}

// redact returns a copy of the flattened key/value pairs with sensitive
// values replaced.
func redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && isSensitiveKey(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// isSensitiveKey matches whole segments only, so "api_key" is sensitive
// and "keyboard" is not.
func isSensitiveKey(key string) bool {
	for _, part := range keySegments.Split(strings.ToLower(key), -1) {
		if sensitiveSegments[part] {
			return true
		}
	}
	return false
}
