package dispatch

import (
	"context"
	"strings"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/logging"
)

// Complete returns full-line candidates for a partially typed command line.
// Command names are completed from the combined listing; once a leaf command
// is typed its Completion, if any, supplies argument candidates.
func (p *Processor) Complete(ctx context.Context, line string) []string {
	if !strings.HasPrefix(line, "/") {
		return nil
	}
	body := line[1:]
	parts := strings.Fields(body)
	if len(parts) == 0 || strings.HasSuffix(body, " ") {
		parts = append(parts, "")
	}

	list := p.AllCommands()
	prefix := "/"
	for i, part := range parts {
		if i == len(parts)-1 {
			var out []string
			for _, cmd := range list {
				if strings.HasPrefix(cmd.Name, part) {
					out = append(out, prefix+cmd.Name)
				}
			}
			return out
		}

		cmd := commands.Find(list, part)
		if cmd == nil {
			return nil
		}
		prefix += part + " "
		if cmd.HasSubCommands() {
			list = cmd.SubCommands
			continue
		}
		if cmd.Completion == nil {
			return nil
		}
		partial := strings.Join(parts[i+1:], " ")
		candidates, err := cmd.Completion(ctx, p.builder.Build(), partial)
		if err != nil {
			logging.Debug("argument completion failed", "command", cmd.Name, "error", err)
			return nil
		}
		out := make([]string, 0, len(candidates))
		for _, c := range candidates {
			out = append(out, prefix+c)
		}
		return out
	}
	return nil
}
