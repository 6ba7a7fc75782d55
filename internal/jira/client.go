// Package jira wraps the jira command line client used for project insights
// and task screening.
package jira

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/tidwall/gjson"
)

// Client abstracts the jira operations used by the slash commands.
type Client interface {
	// ServerTime returns the server time reported by serverInfo.
	ServerTime(ctx context.Context) (string, error)

	// ProjectStatuses returns the sorted, de-duplicated statuses of a project.
	// It returns ErrProjectNotFound when jira reports the project missing.
	ProjectStatuses(ctx context.Context, project string) ([]string, error)

	// IssueTypes returns the sorted, de-duplicated issue types used in a project.
	IssueTypes(ctx context.Context, project string) ([]string, error)

	// ListIssues runs a JQL query and returns the matching issues.
	ListIssues(ctx context.Context, jql string) ([]IssueRef, error)

	// ViewIssue returns the details of a single issue.
	ViewIssue(ctx context.Context, id string) (Issue, error)

	// WorklogList returns the trimmed worklog listing of an issue.
	WorklogList(ctx context.Context, id string) (string, error)

	// Run executes jira with the given arguments.
	Run(ctx context.Context, args ...string) (string, string, error)
}

// DefaultClient implements Client by running the jira binary.
type DefaultClient struct {
	binary  string
	timeout time.Duration
}

// NewDefaultClient creates a new DefaultClient with the given options.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// runCommand executes jira and returns stdout, stderr and any error.
func (c *DefaultClient) runCommand(ctx context.Context, args ...string) (string, string, error) {
	start := time.Now()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	colors.StructuredDebug(colors.Event{Component: "jira", Action: "run", Status: "started", ID: command,
		Fields: map[string]interface{}{"args_count": len(args)}})

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	fields := map[string]interface{}{"args_count": len(args), "duration_seconds": time.Since(start).Seconds()}
	if err != nil {
		colors.StructuredError(colors.Event{Component: "jira", Action: "run", Status: "failed", Err: err, ID: command, Fields: fields})
	} else {
		colors.StructuredDebug(colors.Event{Component: "jira", Action: "run", Status: "completed", ID: command, Fields: fields})
	}
	return stdout.String(), stderr.String(), err
}

// Run executes jira with the given arguments.
func (c *DefaultClient) Run(ctx context.Context, args ...string) (string, string, error) {
	stdout, stderr, err := c.runCommand(ctx, args...)
	if err != nil {
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = err.Error()
		}
		return stdout, stderr, fmt.Errorf("%w: jira %s: %s", ErrCommandFailed, strings.Join(args, " "), msg)
	}
	return stdout, stderr, nil
}

func (c *DefaultClient) request(ctx context.Context, path string) (string, error) {
	stdout, _, err := c.Run(ctx, "request", "-M", "GET", path)
	return stdout, err
}

// ServerTime returns the server time reported by serverInfo.
func (c *DefaultClient) ServerTime(ctx context.Context) (string, error) {
	out, err := c.request(ctx, "/rest/api/2/serverInfo")
	if err != nil {
		return "", err
	}
	return gjson.Get(out, "serverTime").String(), nil
}

// ProjectStatuses returns the statuses available in project.
func (c *DefaultClient) ProjectStatuses(ctx context.Context, project string) ([]string, error) {
	out, err := c.request(ctx, "/rest/api/2/project/"+project+"/statuses")
	if err != nil {
		if reportsNotFound(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrProjectNotFound, project, err)
		}
		return nil, fmt.Errorf("fetching statuses of %s: %w", project, err)
	}
	if !gjson.Valid(out) {
		return nil, fmt.Errorf("%w: %s: unexpected response", ErrProjectNotFound, project)
	}
	var names []string
	for _, r := range gjson.Get(out, "#.name").Array() {
		names = append(names, r.String())
	}
	return sortedUnique(names), nil
}

// reportsNotFound reports whether jira said the resource does not exist.
// Timeouts and auth failures do not.
func reportsNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "404")
}

// IssueTypes returns the issue types used by the issues of project.
func (c *DefaultClient) IssueTypes(ctx context.Context, project string) ([]string, error) {
	out, _, err := c.Run(ctx, "list", "--query=project = "+project, "--template=json")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, r := range gjson.Get(out, "issues.#.fields.issuetype.name").Array() {
		names = append(names, r.String())
	}
	return sortedUnique(names), nil
}

// ListIssues runs a JQL query and parses the "KEY: summary" listing.
func (c *DefaultClient) ListIssues(ctx context.Context, jql string) ([]IssueRef, error) {
	out, _, err := c.Run(ctx, "list", "--query="+jql)
	if err != nil {
		return nil, err
	}
	return ParseIssueList(out), nil
}

// ViewIssue returns the details of a single issue.
func (c *DefaultClient) ViewIssue(ctx context.Context, id string) (Issue, error) {
	out, _, err := c.Run(ctx, "view", id, "--template=json")
	if err != nil {
		return Issue{}, err
	}
	return ParseIssue([]byte(out))
}

// WorklogList returns the trimmed worklog listing of an issue.
func (c *DefaultClient) WorklogList(ctx context.Context, id string) (string, error) {
	out, _, err := c.Run(ctx, "worklog", "list", id)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// sortedUnique drops empty values and duplicates and sorts the rest.
func sortedUnique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
