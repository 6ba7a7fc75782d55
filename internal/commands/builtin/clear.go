package builtin

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/g-project/internal/commands"
)

// Clear wipes the transcript and starts a new model conversation.
func Clear() *commands.Command {
	return &commands.Command{
		Name:        "clear",
		Description: "clear the screen and conversation history",
		Action: func(ctx context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			cmdCtx.UI.SetDebugMessage("Clearing terminal and resetting chat.")
			if chat := cmdCtx.Services.Chat; chat != nil {
				if err := chat.ResetChat(ctx); err != nil {
					return nil, fmt.Errorf("resetting chat: %w", err)
				}
			}
			cmdCtx.UI.Clear()
			return nil, nil
		},
	}
}
