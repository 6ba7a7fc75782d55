// Package tools holds the host-side tools that slash commands and the model
// can schedule.
package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cristianoliveira/g-project/internal/colors"
)

// ErrUnknownTool is returned by Run for unregistered names.
var ErrUnknownTool = errors.New("unknown tool")

// RunFunc executes a tool with its decoded arguments and returns the output
// shown to the user.
type RunFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool is a named host capability.
type Tool struct {
	Name        string
	Description string
	Run         RunFunc
}

// Registry maps tool names to tools. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry returns a registry holding tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a tool.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name] = t
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Description returns the tool's description, or "" when it is unknown.
func (r *Registry) Description(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name].Description
}

// Run executes the named tool.
func (r *Registry) Run(ctx context.Context, name string, args map[string]any) (string, error) {
	r.mu.RLock()
	t, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok || t.Run == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	out, err := t.Run(ctx, args)
	if err != nil {
		colors.StructuredError(colors.Event{Component: "tools", Action: "run", Status: "failed", ID: name, Err: err})
		return "", fmt.Errorf("%s: %w", name, err)
	}
	colors.StructuredDebug(colors.Event{Component: "tools", Action: "run", Status: "completed", ID: name})
	return out, nil
}

// StringArg returns args[key] when it is a non-empty string.
func StringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing argument %q", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("argument %q must be a non-empty string", key)
	}
	return s, nil
}
