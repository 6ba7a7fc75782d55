package builtin

import (
	"context"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// Quit ends the session with a farewell showing its duration.
func Quit(deps Deps) *commands.Command {
	return &commands.Command{
		Name:        "quit",
		AltName:     "exit",
		Description: "exit the cli",
		Action: func(_ context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			now := deps.now()
			return commands.QuitResult{
				Messages: []domain.HistoryItem{
					{Type: domain.MessageTypeUser, Text: "/quit", Timestamp: now},
					{Type: domain.MessageTypeQuit, Duration: cmdCtx.Session.Stats.Duration(now), Timestamp: now},
				},
			}, nil
		},
	}
}

// Stats shows how long the session has been running.
func Stats(deps Deps) *commands.Command {
	return &commands.Command{
		Name:        "stats",
		AltName:     "usage",
		Description: "check session stats",
		Action: func(_ context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			now := deps.now()
			cmdCtx.UI.AddItem(domain.HistoryItem{
				Type:      domain.MessageTypeStats,
				Duration:  cmdCtx.Session.Stats.Duration(now),
				Timestamp: now,
			})
			return nil, nil
		},
	}
}
