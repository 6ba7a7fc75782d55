// Package commands defines the slash command model: the Command tree, the
// per-invocation Context handed to actions and the closed set of results an
// action may return to the host.
package commands

import (
	"context"
	"fmt"
	"strings"
)

// ActionFunc runs a command with the residual argument string.
// A nil result means there is nothing further for the host to do.
type ActionFunc func(ctx context.Context, cmdCtx *Context, args string) (ActionResult, error)

// CompletionFunc returns candidates for a partially typed argument.
// It is used by interactive completion only, never by the dispatcher.
type CompletionFunc func(ctx context.Context, cmdCtx *Context, partialArg string) ([]string, error)

// Command is a named node of the slash command tree.
//
// A command without Action but with SubCommands is a namespace: invoking it
// directly produces a usage listing of its children.
type Command struct {
	// Name is unique among its siblings.
	Name string

	// AltName is an optional secondary alias with the same uniqueness scope.
	AltName string

	// Description is shown in usage listings and completion.
	Description string

	// Action is nil for pure namespaces.
	Action ActionFunc

	// SubCommands are the ordered children of this node.
	SubCommands []*Command

	// Completion is optional.
	Completion CompletionFunc
}

// Matches reports whether token selects this command by name or alias.
func (c *Command) Matches(token string) bool {
	if c == nil || token == "" {
		return false
	}
	return c.Name == token || (c.AltName != "" && c.AltName == token)
}

// HasSubCommands reports whether the command is a namespace. A non-nil but
// empty child list still counts and lists no subcommands.
func (c *Command) HasSubCommands() bool {
	return c != nil && c.SubCommands != nil
}

// Find returns the first command in list matching token, or nil.
func Find(list []*Command, token string) *Command {
	for _, cmd := range list {
		if cmd.Matches(token) {
			return cmd
		}
	}
	return nil
}

// Names returns the primary names of list in order.
func Names(list []*Command) []string {
	names := make([]string, 0, len(list))
	for _, cmd := range list {
		names = append(names, cmd.Name)
	}
	return names
}

// UsageText lists the children of a namespace command.
func UsageText(cmd *Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Command '/%s' requires a subcommand. Available:", cmd.Name)
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(&b, "\n  - %s: %s", sub.Name, sub.Description)
	}
	return b.String()
}
