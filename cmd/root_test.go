package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelpListsKnownCommandsInOrder(t *testing.T) {
	root := &cobra.Command{Use: "g-project", Short: "A terminal agent shell with slash commands."}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "chat", Short: "Start a chat session"},
		&cobra.Command{Use: "hidden-extra", Short: "Not listed"},
	)
	var buf bytes.Buffer

	PrintHelp(root, &buf)

	out := buf.String()
	assert.Contains(t, out, "USAGE:\n    g-project [COMMAND] [OPTIONS]")
	assert.Contains(t, out, "    chat             Start a chat session\n    version          Show version information")
	assert.NotContains(t, out, "hidden-extra")
}
