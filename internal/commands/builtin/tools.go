package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/g-project/internal/commands"
)

// Tools lists the tools the host can execute. "/tools desc" adds descriptions.
func Tools() *commands.Command {
	return &commands.Command{
		Name:        "tools",
		Description: "list available tools",
		Action: func(_ context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
			catalog := cmdCtx.Services.Tools
			if catalog == nil {
				return commands.Error("Could not retrieve tools."), nil
			}
			mode := strings.TrimSpace(args)
			withDesc := mode == "desc" || mode == "descriptions"

			var b strings.Builder
			b.WriteString("Available tools:\n\n")
			names := catalog.Names()
			if len(names) == 0 {
				b.WriteString("  No tools available\n")
			}
			for _, name := range names {
				if withDesc {
					fmt.Fprintf(&b, "  - %s: %s\n", name, catalog.Description(name))
				} else {
					fmt.Fprintf(&b, "  - %s\n", name)
				}
			}
			return commands.Info(b.String()), nil
		},
	}
}
