package jira

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseRulesKeepsFileOrder(t *testing.T) {
	data := []byte(`{
		"In Review": ["description_not_empty"],
		"Backlog": ["comment_count_at_least_one", "worklog_not_empty"],
		"Analysis": []
	}`)

	rules, err := ParseRules(data)

	require.NoError(t, err)
	assert.Equal(t, RuleSet{
		{Status: "In Review", Rules: []string{RuleDescription}},
		{Status: "Backlog", Rules: []string{RuleCommentCount, RuleWorklog}},
		{Status: "Analysis"},
	}, rules)
}

func TestParseRulesInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"a": [`},
		{"array root", `["a"]`},
		{"rules not array", `{"Backlog": "description_not_empty"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidRules)
		})
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "GP"+ValidationFileSuffix)
	require.NoError(t, os.WriteFile(path, []byte(`{"Backlog":["description_not_empty"]}`), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Len(t, rules, 1)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestEvaluateRule(t *testing.T) {
	full := Issue{Key: "GP-1", CommentCount: 3, Description: "text", OriginalEstimate: "1d", HasEstimate: true}
	empty := Issue{Key: "GP-2"}

	tests := []struct {
		name  string
		rule  string
		issue Issue
		want  RuleResult
	}{
		{"comments present", RuleCommentCount, full, RuleResult{true, "3 comments"}},
		{"comments missing", RuleCommentCount, empty, RuleResult{false, "No comments"}},
		{"description present", RuleDescription, full, RuleResult{true, "Has description"}},
		{"description blank", RuleDescription, Issue{Description: " \n"}, RuleResult{false, "Empty"}},
		{"estimate set", RuleOriginalEstimate, full, RuleResult{true, "1d"}},
		{"estimate missing", RuleOriginalEstimate, empty, RuleResult{false, "Not set"}},
		{"unknown rule", "has_owner", full, RuleResult{false, "Unknown rule"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRule(context.Background(), new(MockClient), tt.rule, tt.issue)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateRuleWorklog(t *testing.T) {
	client := new(MockClient)
	client.On("WorklogList", mock.Anything, "GP-1").Return("- #1 2h\nnote\n- #2 1h", nil)
	client.On("WorklogList", mock.Anything, "GP-2").Return("", nil)
	client.On("WorklogList", mock.Anything, "GP-3").Return("", errors.New("boom"))
	client.On("WorklogList", mock.Anything, "GP-4").Return("worked", nil)

	ctx := context.Background()
	assert.Equal(t, RuleResult{true, "2 entries"}, EvaluateRule(ctx, client, RuleWorklog, Issue{Key: "GP-1"}))
	assert.Equal(t, RuleResult{false, "No entries"}, EvaluateRule(ctx, client, RuleWorklog, Issue{Key: "GP-2"}))
	assert.Equal(t, RuleResult{false, "Error checking"}, EvaluateRule(ctx, client, RuleWorklog, Issue{Key: "GP-3"}))
	// any output passes even when no entry line is recognized
	assert.Equal(t, RuleResult{true, "0 entries"}, EvaluateRule(ctx, client, RuleWorklog, Issue{Key: "GP-4"}))
}

func TestStatusQuery(t *testing.T) {
	assert.Equal(t,
		"project = GP AND status WAS 'In Review' AND status NOT IN ('In Review', 'Done')",
		StatusQuery("GP", "In Review"))
}

func TestScreener(t *testing.T) {
	client := new(MockClient)
	client.On("ListIssues", mock.Anything, StatusQuery("GP", "Backlog")).
		Return([]IssueRef{{ID: "GP-1", Summary: "one"}, {ID: "GP-2", Summary: "two"}}, nil)
	client.On("ListIssues", mock.Anything, StatusQuery("GP", "Review")).Return(nil, errors.New("jql error"))
	client.On("ListIssues", mock.Anything, StatusQuery("GP", "Empty")).Return([]IssueRef{}, nil)
	client.On("ViewIssue", mock.Anything, "GP-1").Return(Issue{Key: "GP-1", CommentCount: 1}, nil)
	client.On("ViewIssue", mock.Anything, "GP-2").Return(Issue{Description: "d"}, nil)

	rules := RuleSet{
		{Status: "Backlog", Rules: []string{RuleCommentCount, RuleDescription}},
		{Status: "Review", Rules: []string{RuleDescription}},
		{Status: "Empty", Rules: []string{RuleDescription}},
	}

	report, err := NewScreener(client).Screen(context.Background(), "GP", rules)

	require.NoError(t, err)
	require.Len(t, report.Statuses, 1)
	backlog := report.Statuses[0]
	assert.Equal(t, "Backlog", backlog.Status)
	require.Len(t, backlog.Tasks, 2)
	assert.Equal(t, RuleResult{true, "1 comments"}, backlog.Tasks[0].Results[RuleCommentCount])
	assert.Equal(t, RuleResult{true, "Has description"}, backlog.Tasks[1].Results[RuleDescription])

	tasks, passed, failed := report.Counts()
	assert.Equal(t, 2, tasks)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 2, failed)
}

func TestScreenerViewFailureSkipsStatus(t *testing.T) {
	client := new(MockClient)
	client.On("ListIssues", mock.Anything, mock.Anything).Return([]IssueRef{{ID: "GP-1", Summary: "one"}}, nil)
	client.On("ViewIssue", mock.Anything, "GP-1").Return(Issue{}, errors.New("gone"))

	report, err := NewScreener(client).Screen(context.Background(), "GP", RuleSet{{Status: "Backlog", Rules: []string{RuleDescription}}})

	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestScreenerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScreener(new(MockClient)).Screen(ctx, "GP", RuleSet{{Status: "Backlog"}})

	assert.ErrorIs(t, err, context.Canceled)
}
