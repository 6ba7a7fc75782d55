package builtin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// SaveMemoryTool is the tool scheduled by /memory add.
const SaveMemoryTool = "save_memory"

// Memory groups the saved-memories commands.
func Memory() *commands.Command {
	return &commands.Command{
		Name:        "memory",
		Description: "Commands for interacting with memory.",
		SubCommands: []*commands.Command{
			{
				Name:        "show",
				Description: "Show the current memory contents.",
				Action:      showMemory,
			},
			{
				Name:        "add",
				Description: "Add content to the memory.",
				Action:      addMemory,
			},
		},
	}
}

func showMemory(_ context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
	path := ""
	if cfg := cmdCtx.Services.Config; cfg != nil {
		path = cfg.MemoryFile()
	}
	if path == "" {
		return commands.Info("Memory is currently empty."), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return commands.Info("Memory is currently empty."), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading memory file: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return commands.Info("Memory is currently empty."), nil
	}
	return commands.Info(fmt.Sprintf("Current memory content:\n\n---\n%s\n---", content)), nil
}

func addMemory(_ context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
	fact := strings.TrimSpace(args)
	if fact == "" {
		return commands.Error("Usage: /memory add <text to remember>"), nil
	}
	cmdCtx.UI.AddItem(domain.NewTextItem(domain.MessageTypeInfo,
		fmt.Sprintf("Attempting to save to memory: \"%s\"", fact)))
	return commands.ScheduleTool(SaveMemoryTool, map[string]any{"fact": fact}), nil
}
