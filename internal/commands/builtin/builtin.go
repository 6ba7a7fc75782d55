// Package builtin implements the slash commands shipped with g-project.
package builtin

import (
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/jira"
)

// Deps are the collaborators built-in commands need beyond the per-call Context.
type Deps struct {
	// Jira runs the issue tracker queries of the project commands.
	Jira jira.Client

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Commands returns the always-available built-ins in display order.
// Entries may be nil when a dependency is missing; the registry drops them.
func Commands(deps Deps) []*commands.Command {
	return []*commands.Command{
		About(),
		Auth(),
		Chat(),
		Clear(),
		Compress(),
		Editor(),
		Memory(),
		Quit(deps),
		Stats(deps),
		Theme(),
		Tools(),
		GetToKnowMyProject(deps),
		StartProject(deps),
	}
}
