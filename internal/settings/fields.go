package settings

import (
	"errors"
	"fmt"
	"slices"
)

// Field is one user-editable setting with a closed set of values.
type Field struct {
	Key     string
	Options []string
	ref     func(*Settings) *string
}

// Editable fields in dialog order.
var (
	AuthField   = Field{Key: "selectedAuthType", Options: AuthTypes, ref: func(s *Settings) *string { return &s.SelectedAuthType }}
	ThemeField  = Field{Key: "theme", Options: Themes, ref: func(s *Settings) *string { return &s.Theme }}
	EditorField = Field{Key: "preferredEditor", Options: Editors, ref: func(s *Settings) *string { return &s.PreferredEditor }}

	Fields = []Field{AuthField, ThemeField, EditorField}
)

// Get returns the field's value in s.
func (f Field) Get(s *Settings) string {
	return *f.ref(s)
}

// Set stores value in s if it is one of the field's options.
func (f Field) Set(s *Settings, value string) error {
	if !IsOneOf(value, f.Options) {
		return fmt.Errorf("invalid %s value: %s", f.Key, value)
	}
	*f.ref(s) = value
	return nil
}

// Validate accepts settings whose fields are unset or hold a known option.
func Validate(s *Settings) error {
	if s == nil {
		return errors.New("settings cannot be nil")
	}
	for _, f := range Fields {
		if v := f.Get(s); v != "" && !IsOneOf(v, f.Options) {
			return fmt.Errorf("invalid %s value: %s", f.Key, v)
		}
	}
	return nil
}

// IsOneOf reports whether value is a member of allowed.
func IsOneOf(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}
