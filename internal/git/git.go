// Package git reports repository state for the session's working directory.
package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrDetachedHead is returned by Branch when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// Status reads repository information under root. The repository is opened
// on every call so branch switches are picked up.
type Status struct {
	root string
}

// NewStatus returns a Status for the repository containing root.
func NewStatus(root string) *Status {
	return &Status{root: root}
}

// Branch returns the short name of the checked out branch. An unborn branch
// of a fresh repository is reported by name.
func (s *Status) Branch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	repo, err := gogit.PlainOpenWithOptions(s.root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", s.root, err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return "", ErrDetachedHead
}
