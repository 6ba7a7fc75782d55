package jira

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/tidwall/gjson"
)

// Validation rule names accepted in <KEY>_validation.json files.
const (
	RuleCommentCount     = "comment_count_at_least_one"
	RuleDescription      = "description_not_empty"
	RuleOriginalEstimate = "original_estimate_not_empty"
	RuleWorklog          = "worklog_not_empty"
)

// ValidationFileSuffix is the file name suffix of per-project rule files.
const ValidationFileSuffix = "_validation.json"

// StatusRules lists the rules applied to tasks that left Status.
type StatusRules struct {
	Status string
	Rules  []string
}

// RuleSet keeps the statuses in file order.
type RuleSet []StatusRules

// ParseRules reads a JSON object mapping status names to rule name arrays.
func ParseRules(data []byte) (RuleSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidRules)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected an object of status to rules", ErrInvalidRules)
	}

	var set RuleSet
	var parseErr error
	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			parseErr = fmt.Errorf("%w: rules for %q must be an array", ErrInvalidRules, key.String())
			return false
		}
		entry := StatusRules{Status: key.String()}
		for _, rule := range value.Array() {
			entry.Rules = append(entry.Rules, rule.String())
		}
		set = append(set, entry)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return set, nil
}

// LoadRules reads and parses a rule file.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRules(data)
}

// RuleResult is the outcome of one rule on one task.
type RuleResult struct {
	Passed  bool
	Message string
}

// EvaluateRule applies rule to issue. Worklog lookups go through client.
func EvaluateRule(ctx context.Context, client Client, rule string, issue Issue) RuleResult {
	switch rule {
	case RuleCommentCount:
		if issue.CommentCount > 0 {
			return RuleResult{Passed: true, Message: fmt.Sprintf("%d comments", issue.CommentCount)}
		}
		return RuleResult{Message: "No comments"}
	case RuleDescription:
		if issue.HasDescription() {
			return RuleResult{Passed: true, Message: "Has description"}
		}
		return RuleResult{Message: "Empty"}
	case RuleOriginalEstimate:
		if issue.HasEstimate {
			return RuleResult{Passed: true, Message: issue.OriginalEstimate}
		}
		return RuleResult{Message: "Not set"}
	case RuleWorklog:
		out, err := client.WorklogList(ctx, issue.Key)
		if err != nil {
			return RuleResult{Message: "Error checking"}
		}
		if out == "" {
			return RuleResult{Message: "No entries"}
		}
		return RuleResult{Passed: true, Message: fmt.Sprintf("%d entries", countWorklogEntries(out))}
	default:
		return RuleResult{Message: "Unknown rule"}
	}
}

func countWorklogEntries(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "- #") {
			n++
		}
	}
	return n
}

// TaskResult holds the rule outcomes of one task.
type TaskResult struct {
	ID      string
	Summary string
	Results map[string]RuleResult
}

// StatusReport groups the tasks screened for one status.
type StatusReport struct {
	Status string
	Rules  []string
	Tasks  []TaskResult
}

// Report is the outcome of screening a project.
type Report struct {
	Project  string
	Statuses []StatusReport
}

// Empty reports whether no task was screened.
func (r Report) Empty() bool {
	for _, s := range r.Statuses {
		if len(s.Tasks) > 0 {
			return false
		}
	}
	return true
}

// Counts returns the number of tasks and of passed and failed rule checks.
func (r Report) Counts() (tasks, passed, failed int) {
	for _, s := range r.Statuses {
		tasks += len(s.Tasks)
		for _, task := range s.Tasks {
			for _, res := range task.Results {
				if res.Passed {
					passed++
				} else {
					failed++
				}
			}
		}
	}
	return tasks, passed, failed
}

// StatusQuery returns the JQL selecting tasks that were in status and have
// since moved on to anything but Done.
func StatusQuery(project, status string) string {
	return fmt.Sprintf("project = %s AND status WAS '%s' AND status NOT IN ('%s', 'Done')", project, status, status)
}

// Screener validates the tasks of a project against a RuleSet.
type Screener struct {
	client Client
}

// NewScreener returns a Screener using client.
func NewScreener(client Client) *Screener {
	return &Screener{client: client}
}

// Screen runs every status query of rules. A failing status is logged and
// skipped, and statuses without tasks are left out of the report. Only
// context cancellation aborts the screening.
func (s *Screener) Screen(ctx context.Context, project string, rules RuleSet) (Report, error) {
	report := Report{Project: project}
	for _, entry := range rules {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		statusReport, err := s.screenStatus(ctx, project, entry)
		if err != nil {
			colors.StructuredWarn(colors.Event{Component: "jira", Action: "screen", Status: "skipped", Err: err,
				ID: project, Fields: map[string]interface{}{"status": entry.Status}})
			continue
		}
		if len(statusReport.Tasks) > 0 {
			report.Statuses = append(report.Statuses, statusReport)
		}
	}
	return report, nil
}

func (s *Screener) screenStatus(ctx context.Context, project string, entry StatusRules) (StatusReport, error) {
	report := StatusReport{Status: entry.Status, Rules: entry.Rules}
	refs, err := s.client.ListIssues(ctx, StatusQuery(project, entry.Status))
	if err != nil {
		return report, fmt.Errorf("listing tasks for %s: %w", entry.Status, err)
	}
	for _, ref := range refs {
		issue, err := s.client.ViewIssue(ctx, ref.ID)
		if err != nil {
			return report, fmt.Errorf("viewing %s: %w", ref.ID, err)
		}
		if issue.Key == "" {
			issue.Key = ref.ID
		}
		task := TaskResult{ID: ref.ID, Summary: ref.Summary, Results: make(map[string]RuleResult, len(entry.Rules))}
		for _, rule := range entry.Rules {
			task.Results[rule] = EvaluateRule(ctx, s.client, rule, issue)
		}
		report.Tasks = append(report.Tasks, task)
	}
	return report, nil
}
