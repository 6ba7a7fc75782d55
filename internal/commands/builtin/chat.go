package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// Chat groups the conversation checkpoint commands.
func Chat() *commands.Command {
	return &commands.Command{
		Name:        "chat",
		Description: "Manage conversation history.",
		SubCommands: []*commands.Command{
			chatList(),
			chatSave(),
			chatResume(),
		},
	}
}

func chatList() *commands.Command {
	return &commands.Command{
		Name:        "list",
		Description: "List saved conversation checkpoints",
		Action: func(ctx context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			store := cmdCtx.Services.Logger
			if store == nil {
				return commands.Error("Checkpoint storage is not available."), nil
			}
			tags, err := store.ListCheckpoints(ctx)
			if err != nil {
				return nil, fmt.Errorf("listing checkpoints: %w", err)
			}
			if len(tags) == 0 {
				return commands.Info("No saved conversation checkpoints found."), nil
			}
			return commands.Info("List of saved conversations: " + strings.Join(tags, ", ")), nil
		},
	}
}

func chatSave() *commands.Command {
	return &commands.Command{
		Name:        "save",
		Description: "Save the current conversation as a checkpoint. Usage: /chat save <tag>",
		Action: func(ctx context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
			tag := strings.TrimSpace(args)
			if tag == "" {
				return commands.Error("Missing tag. Usage: /chat save <tag>"), nil
			}
			chat, store := cmdCtx.Services.Chat, cmdCtx.Services.Logger
			if chat == nil {
				return commands.Error("No chat client available to save conversation."), nil
			}
			if store == nil {
				return commands.Error("Checkpoint storage is not available."), nil
			}
			history := chat.History()
			if len(history) == 0 {
				return commands.Info("No conversation found to save."), nil
			}
			if err := store.SaveCheckpoint(ctx, tag, history); err != nil {
				return nil, fmt.Errorf("saving checkpoint %s: %w", tag, err)
			}
			return commands.Info("Conversation checkpoint saved with tag: " + tag + "."), nil
		},
	}
}

func chatResume() *commands.Command {
	return &commands.Command{
		Name:        "resume",
		AltName:     "load",
		Description: "Resume a conversation from a checkpoint. Usage: /chat resume <tag>",
		Action: func(ctx context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
			tag := strings.TrimSpace(args)
			if tag == "" {
				return commands.Error("Missing tag. Usage: /chat resume <tag>"), nil
			}
			store := cmdCtx.Services.Logger
			if store == nil {
				return commands.Error("Checkpoint storage is not available."), nil
			}
			turns, err := store.LoadCheckpoint(ctx, tag)
			if err != nil {
				return nil, fmt.Errorf("loading checkpoint %s: %w", tag, err)
			}
			if len(turns) == 0 {
				return commands.Info("No saved checkpoint found with tag: " + tag + "."), nil
			}
			return commands.LoadHistoryResult{
				History:       domain.TurnsToItems(turns),
				ClientHistory: turns,
			}, nil
		},
		Completion: func(ctx context.Context, cmdCtx *commands.Context, partial string) ([]string, error) {
			store := cmdCtx.Services.Logger
			if store == nil {
				return nil, nil
			}
			tags, err := store.ListCheckpoints(ctx)
			if err != nil {
				return nil, err
			}
			var matches []string
			for _, tag := range tags {
				if strings.HasPrefix(tag, partial) {
					matches = append(matches, tag)
				}
			}
			return matches, nil
		},
	}
}
