package logging

import (
	"strings"
	"unicode"
)

const redacted = "[REDACTED]"

// redactor masks values whose key names a credential. A key is split on
// anything that is not a letter or digit and each segment is compared, so
// "api_key" is masked while "monkey" is not.
type redactor struct {
	words []string
}

func newRedactor() *redactor {
	return &redactor{words: []string{"auth", "bearer", "credential", "key", "password", "secret", "token"}}
}

// redact returns a copy of the key/value list with sensitive values masked.
func (r *redactor) redact(keyvals []any) []any {
	if len(keyvals) == 0 {
		return keyvals
	}
	out := append([]any(nil), keyvals...)
	for i := 1; i < len(out); i += 2 {
		if key, ok := out[i-1].(string); ok && r.sensitive(key) {
			out[i] = redacted
		}
	}
	return out
}

func (r *redactor) sensitive(key string) bool {
	segments := strings.FieldsFunc(strings.ToLower(key), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	for _, seg := range segments {
		for _, w := range r.words {
			if seg == w {
				return true
			}
		}
	}
	return false
}
