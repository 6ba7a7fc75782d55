package builtin

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// Compress replaces the conversation with a model-written summary.
func Compress() *commands.Command {
	return &commands.Command{
		Name:        "compress",
		AltName:     "summarize",
		Description: "Compresses the context by replacing it with a summary.",
		Action: func(ctx context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			ui := cmdCtx.UI
			if ui.PendingItem() != nil {
				return commands.Error("Already compressing, wait for previous request to complete"), nil
			}
			chat := cmdCtx.Services.Chat
			if chat == nil {
				return commands.Error("No chat client available to compress."), nil
			}

			ui.SetPendingItem(&domain.HistoryItem{
				Type:        domain.MessageTypeCompression,
				Compression: &domain.CompressionInfo{IsPending: true},
				Timestamp:   time.Now(),
			})
			defer ui.SetPendingItem(nil)

			compressed, err := chat.Compress(ctx, true)
			switch {
			case err != nil:
				ui.AddItem(domain.NewTextItem(domain.MessageTypeError,
					fmt.Sprintf("Failed to compress chat history: %v", err)))
			case compressed == nil:
				ui.AddItem(domain.NewTextItem(domain.MessageTypeError, "Failed to compress chat history."))
			default:
				ui.AddItem(domain.HistoryItem{
					Type: domain.MessageTypeCompression,
					Compression: &domain.CompressionInfo{
						OriginalTokenCount: compressed.OriginalTokenCount,
						NewTokenCount:      compressed.NewTokenCount,
					},
					Timestamp: time.Now(),
				})
			}
			return nil, nil
		},
	}
}
