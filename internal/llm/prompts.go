package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const baseSystemPrompt = `You are an interactive CLI agent helping a team run its projects.
Answer concisely and in plain language. Format replies as Markdown.
When the project directory holds a settings/settings.md file, treat its role description and
running instructions as part of these instructions.`

// CompressionPrompt asks the model to condense the conversation so far.
const CompressionPrompt = `Summarize our conversation so far into a compact state snapshot.
Keep every fact, decision, open question and file path that matters for continuing the work.
Reply with the snapshot only.`

const compressionAck = "Got it. Thanks for the additional context!"

// SystemPrompt builds the system instruction from the base prompt, the
// project's settings/settings.md and the saved memories file. Missing files
// are skipped.
func SystemPrompt(projectRoot, memoryFile string) string {
	var b strings.Builder
	b.WriteString(baseSystemPrompt)

	if projectRoot != "" {
		if data, err := os.ReadFile(filepath.Join(projectRoot, "settings", "settings.md")); err == nil && len(strings.TrimSpace(string(data))) > 0 {
			fmt.Fprintf(&b, "\n\n--- Project settings ---\n%s", strings.TrimSpace(string(data)))
		}
	}
	if memoryFile != "" {
		if data, err := os.ReadFile(memoryFile); err == nil && len(strings.TrimSpace(string(data))) > 0 {
			fmt.Fprintf(&b, "\n\n--- Memory ---\n%s", strings.TrimSpace(string(data)))
		}
	}
	return b.String()
}
