package jira

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProjectInfo summarizes a project for the get-to-know-my-project command.
type ProjectInfo struct {
	Key        string
	ServerTime string
	Statuses   []string
	IssueTypes []string
}

// FetchProjectInfo collects server time, statuses and issue types for key.
func FetchProjectInfo(ctx context.Context, client Client, key string) (ProjectInfo, error) {
	info := ProjectInfo{Key: key}

	serverTime, err := client.ServerTime(ctx)
	if err != nil {
		return info, fmt.Errorf("reading server time: %w", err)
	}
	info.ServerTime = serverTime

	statuses, err := client.ProjectStatuses(ctx, key)
	if err != nil {
		return info, err
	}
	info.Statuses = statuses

	types, err := client.IssueTypes(ctx, key)
	if err != nil {
		return info, fmt.Errorf("reading issue types: %w", err)
	}
	info.IssueTypes = types
	return info, nil
}

// Markdown renders the project summary.
func (p ProjectInfo) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Project Information: %s\n\n", p.Key)
	fmt.Fprintf(&b, "### Time\n%s\n\n", p.ServerTime)

	b.WriteString("### Potential Statuses\n")
	writeList(&b, p.Statuses, "No statuses found")

	b.WriteString("\n### Potential Issue Types\n")
	writeList(&b, p.IssueTypes, "No issue types found")
	return b.String()
}

func writeList(b *strings.Builder, items []string, empty string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// IsProjectNotFound reports whether err means the project does not exist.
func IsProjectNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound)
}
