package sqlite

import "errors"

var (
	// ErrInvalidTag indicates an empty or whitespace checkpoint tag.
	ErrInvalidTag = errors.New("invalid checkpoint tag")
	// ErrInvalidSession indicates an empty session ID.
	ErrInvalidSession = errors.New("invalid session ID")
)
