package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/g-project/internal/jira"
)

// Tool names.
const (
	WriteFile  = "write_file"
	ReadFile   = "read_file"
	SaveMemory = "save_memory"
	RunJira    = "run_jira"
)

// MemorySection heads the saved facts in the memory file.
const MemorySection = "## Saved Memories"

// Defaults returns the standard tool set. memoryFile is where save_memory
// writes; jiraClient may be nil, in which case run_jira is not offered.
func Defaults(memoryFile string, jiraClient jira.Client) []Tool {
	list := []Tool{
		{
			Name:        WriteFile,
			Description: "Writes content to a file, creating parent directories as needed.",
			Run:         writeFile,
		},
		{
			Name:        ReadFile,
			Description: "Reads the content of a file.",
			Run:         readFile,
		},
		{
			Name:        SaveMemory,
			Description: "Saves a fact to long-term memory.",
			Run: func(_ context.Context, args map[string]any) (string, error) {
				fact, err := StringArg(args, "fact")
				if err != nil {
					return "", err
				}
				if err := AppendMemory(memoryFile, fact); err != nil {
					return "", err
				}
				return fmt.Sprintf("Okay, I've remembered that: \"%s\"", fact), nil
			},
		},
	}
	if jiraClient != nil {
		list = append(list, Tool{
			Name:        RunJira,
			Description: "Runs the jira command line with the given arguments.",
			Run: func(ctx context.Context, args map[string]any) (string, error) {
				raw, err := StringArg(args, "args")
				if err != nil {
					return "", err
				}
				stdout, _, err := jiraClient.Run(ctx, strings.Fields(raw)...)
				return stdout, err
			},
		})
	}
	return list
}

func writeFile(_ context.Context, args map[string]any) (string, error) {
	path, err := StringArg(args, "file_path")
	if err != nil {
		return "", err
	}
	content, _ := args["content"].(string)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return fmt.Sprintf("Successfully wrote to %s", path), nil
}

func readFile(_ context.Context, args map[string]any) (string, error) {
	path, err := StringArg(args, "file_path")
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

// AppendMemory adds fact as a bullet under MemorySection, creating the file
// and the section when missing.
func AppendMemory(path, fact string) error {
	if path == "" {
		return fmt.Errorf("memory file is not configured")
	}
	fact = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(fact), "-"))
	if fact == "" {
		return fmt.Errorf("empty fact")
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading memory file: %w", err)
	}
	content := string(data)
	entry := "- " + fact + "\n"

	idx := strings.Index(content, MemorySection)
	if idx < 0 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if content != "" {
			content += "\n"
		}
		content += MemorySection + "\n" + entry
	} else {
		start := idx + len(MemorySection)
		end := len(content)
		if next := strings.Index(content[start:], "\n## "); next >= 0 {
			end = start + next + 1
		}
		section := strings.TrimRight(content[start:end], "\n") + "\n" + entry
		if end < len(content) {
			section += "\n"
		}
		content = content[:start] + section + content[end:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing memory file: %w", err)
	}
	return nil
}
