package jira

import "errors"

var (
	// ErrProjectNotFound is returned when a project cannot be read.
	ErrProjectNotFound = errors.New("jira project not found")

	// ErrCommandFailed is returned when a jira invocation exits with an error.
	ErrCommandFailed = errors.New("jira command failed")

	// ErrInvalidRules is returned when a validation file is not a JSON object
	// of status to rule names.
	ErrInvalidRules = errors.New("invalid validation rules")
)
