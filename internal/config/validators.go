package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/colors"
)

// Validator normalizes value for key. A non-nil error makes validate fall
// back to fallback.
type Validator func(key, value, fallback string) (string, error)

// rule describes what a key accepts. Keys without a rule are passed through.
type rule struct {
	check func(value string) (string, error)
	hint  string
}

var rules = map[string]rule{}

func registerRule(key string, r rule) {
	if _, dup := rules[key]; dup {
		panic(fmt.Sprintf("config: validator for %q registered twice", key))
	}
	rules[key] = r
}

func getValidator(key string) Validator {
	r, ok := rules[key]
	if !ok {
		return nil
	}
	return func(_, value, fallback string) (string, error) {
		if value == "" {
			return fallback, nil
		}
		normalized, err := r.check(value)
		if err != nil && r.hint != "" {
			return "", fmt.Errorf("%w (%s)", err, r.hint)
		}
		return normalized, err
	}
}

func positiveInt(value string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%q is not a positive integer", value)
	}
	return strconv.Itoa(n), nil
}

func duration(value string) (string, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return "", fmt.Errorf("%q is not a duration", value)
	}
	return d.String(), nil
}

func flag(value string) (string, error) {
	if b, ok := parseFlag(value); ok {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("%q is not a boolean", value)
}

// oneOf accepts any of choices, case-insensitively, and stores it lowercased.
func oneOf(choices ...string) func(string) (string, error) {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		if slices.Contains(choices, v) {
			return v, nil
		}
		return "", fmt.Errorf("%q is not one of %s", value, strings.Join(choices, ", "))
	}
}

// parseFlag reads the boolean spellings accepted in config files and the
// environment.
func parseFlag(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func initValidators() {
	for _, key := range []string{"max_output_tokens", "quit_grace_ms", "history_limit", "logging_max_files"} {
		registerRule(key, rule{check: positiveInt})
	}
	for _, key := range []string{"session_logging_enabled", "watch_settings", "debug", "quiet", "logging_enabled"} {
		registerRule(key, rule{check: flag, hint: "use true/false, yes/no, on/off or 1/0"})
	}
	registerRule("jira_timeout", rule{check: duration, hint: "e.g. 30s or 2m"})
	registerRule("model_provider", rule{check: oneOf(ProviderGemini, ProviderAnthropic)})
	registerRule("logging_level", rule{check: oneOf("debug", "info", "warn", "error")})
}

// warnInvalid reports a rejected value before the fallback is applied.
func warnInvalid(key string, err error, fallback string) {
	colors.Warning(fmt.Sprintf("config %s: %v; using %q", key, err, fallback))
}
