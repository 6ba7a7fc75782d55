package dispatch

import (
	"context"
	"strings"

	"github.com/cristianoliveira/g-project/internal/commands"
)

// LegacyAction runs a flat command with the first two tokens as main and sub
// command and the remaining tokens as args.
type LegacyAction func(ctx context.Context, mainCommand, subCommand, args string) (commands.ActionResult, error)

// LegacyCommand is a flat command consulted only when tree resolution fails.
type LegacyCommand struct {
	Name        string
	AltName     string
	Description string
	Completion  func(ctx context.Context) ([]string, error)
	Action      LegacyAction
}

// Matches reports whether token selects the command by name or alias.
func (l LegacyCommand) Matches(token string) bool {
	if token == "" {
		return false
	}
	return l.Name == token || (l.AltName != "" && l.AltName == token)
}

func (p *Processor) findLegacy(parts []string) (LegacyCommand, bool) {
	if len(parts) == 0 {
		return LegacyCommand{}, false
	}
	for _, l := range p.legacy {
		if l.Action != nil && l.Matches(parts[0]) {
			return l, true
		}
	}
	return LegacyCommand{}, false
}

func splitLegacy(parts []string) (main, sub, args string) {
	if len(parts) > 0 {
		main = parts[0]
	}
	if len(parts) > 1 {
		sub = parts[1]
	}
	if len(parts) > 2 {
		args = strings.Join(parts[2:], " ")
	}
	return main, sub, args
}

// AdaptLegacy converts l to the tree command shape. The adapted action splits
// its argument string into a sub command and the rest.
func AdaptLegacy(l LegacyCommand) *commands.Command {
	cmd := &commands.Command{
		Name:        l.Name,
		AltName:     l.AltName,
		Description: l.Description,
	}
	if l.Action != nil {
		action := l.Action
		name := l.Name
		cmd.Action = func(ctx context.Context, _ *commands.Context, args string) (commands.ActionResult, error) {
			_, sub, rest := splitLegacy(append([]string{name}, strings.Fields(args)...))
			return action(ctx, name, sub, rest)
		}
	}
	if l.Completion != nil {
		complete := l.Completion
		cmd.Completion = func(ctx context.Context, _ *commands.Context, _ string) ([]string, error) {
			return complete(ctx)
		}
	}
	return cmd
}

// AllCommands returns the tree commands followed by the adapted legacy
// commands whose names do not collide with a tree command.
func (p *Processor) AllCommands() []*commands.Command {
	tree := p.source.Commands()
	names := make(map[string]bool, len(tree))
	for _, cmd := range tree {
		names[cmd.Name] = true
	}
	all := append([]*commands.Command{}, tree...)
	for _, l := range p.legacy {
		if names[l.Name] {
			continue
		}
		all = append(all, AdaptLegacy(l))
	}
	return all
}
