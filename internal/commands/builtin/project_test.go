package builtin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/jira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetToKnowMyProject(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	client := new(jira.MockClient)
	client.On("ServerTime", mock.Anything).Return("2026-10-18T10:00:00.000+0000", nil)
	client.On("ProjectStatuses", mock.Anything, "GP").Return([]string{"Done", "In Progress"}, nil)
	client.On("IssueTypes", mock.Anything, "GP").Return([]string{"Bug"}, nil)
	cmd := GetToKnowMyProject(Deps{Jira: client})

	result := run(t, cmd, cmdCtx, " GP ")

	assert.Equal(t, commands.Info("## Project Information: GP\n\n"+
		"### Time\n2026-10-18T10:00:00.000+0000\n\n"+
		"### Potential Statuses\n- Done\n- In Progress\n"+
		"\n### Potential Issue Types\n- Bug\n"), result)
}

func TestGetToKnowMyProjectErrors(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	client := new(jira.MockClient)
	client.On("ServerTime", mock.Anything).Return("now", nil)
	client.On("ProjectStatuses", mock.Anything, "XX").Return(nil, fmt.Errorf("%w: XX", jira.ErrProjectNotFound))
	client.On("ProjectStatuses", mock.Anything, "SLOW").Return(nil, fmt.Errorf("fetching statuses of SLOW: %w", jira.ErrCommandFailed))
	client.On("ProjectStatuses", mock.Anything, "GP").Return([]string{"Done"}, nil)
	client.On("IssueTypes", mock.Anything, "GP").Return(nil, errors.New("jql failed"))
	cmd := GetToKnowMyProject(Deps{Jira: client})

	assert.Equal(t,
		commands.Error("Please provide a project handle. Usage: /get-to-know-my-project <PROJECT_HANDLE>\n\nExample: /get-to-know-my-project GP"),
		run(t, cmd, cmdCtx, ""))
	assert.Equal(t, commands.Error("Ooops seems to be project {XX} do not exist"), run(t, cmd, cmdCtx, "XX"))
	assert.Equal(t,
		commands.Error("Error getting project information: reading issue types: jql failed"),
		run(t, cmd, cmdCtx, "GP"))
	assert.Equal(t,
		commands.Error("Error getting project information: fetching statuses of SLOW: jira command failed"),
		run(t, cmd, cmdCtx, "SLOW"), "a failed request is not a missing project")
}

func TestStartProject(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	cmd := StartProject(Deps{Now: func() time.Time { return fixedNow }})

	assert.Equal(t,
		commands.Error("Usage: /start-project <PROJECT_HANDLE> <JIRA_USER>\n\nExample: /start-project AT john.doe@company.com"),
		run(t, cmd, cmdCtx, "AT"))

	result, ok := run(t, cmd, cmdCtx, "AT john.doe@company.com").(commands.ToolResult)
	require.True(t, ok)
	assert.Equal(t, WriteFileTool, result.ToolName)
	assert.Equal(t, filepath.Join(cmdCtx.Services.Config.ProjectRoot(), "settings", "settings.md"), result.ToolArgs["file_path"])
	content, _ := result.ToolArgs["content"].(string)
	assert.True(t, strings.HasPrefix(content,
		"# Project Settings\nPROJECT_HANDLE=AT\nJIRA_USER=john.doe@company.com\nLAST_STAND_UP=15-Jul-2026 19:24:16\n\n\n#Role description\n"))
	assert.Contains(t, content, "- Do not print running logs. Just final results")
}

func writeRules(t *testing.T, root, key, body string) {
	t.Helper()
	dir := filepath.Join(root, SettingsDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, key+jira.ValidationFileSuffix), []byte(body), 0644))
}

func TestScreenTasksInputErrors(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	root := cmdCtx.Services.Config.ProjectRoot()
	cmd := ScreenTasks(Deps{Jira: new(jira.MockClient)})

	assert.Equal(t, commands.Error("Usage: /screen-tasks <PROJECT_HANDLE>\n\nExample: /screen-tasks GP"), run(t, cmd, cmdCtx, ""))
	assert.Equal(t, commands.Error("Please create validation rules for this project"), run(t, cmd, cmdCtx, "GP"))

	writeRules(t, root, "GP", `{"Backlog": `)
	result, ok := run(t, cmd, cmdCtx, "GP").(commands.MessageResult)
	require.True(t, ok)
	assert.Equal(t, commands.MessageError, result.MessageType)
	assert.True(t, strings.HasPrefix(result.Content, "Error reading validation file: "))
}

func TestScreenTasks(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	writeRules(t, cmdCtx.Services.Config.ProjectRoot(), "GP", `{"In Review": ["description_not_empty"]}`)
	client := new(jira.MockClient)
	client.On("ListIssues", mock.Anything, jira.StatusQuery("GP", "In Review")).
		Return([]jira.IssueRef{{ID: "GP-7", Summary: "Ship it"}}, nil)
	client.On("ViewIssue", mock.Anything, "GP-7").Return(jira.Issue{Key: "GP-7", Description: "done"}, nil)

	result, ok := run(t, ScreenTasks(Deps{Jira: client}), cmdCtx, "GP").(commands.MessageResult)

	require.True(t, ok)
	assert.Equal(t, commands.MessageInfo, result.MessageType)
	assert.Contains(t, result.Content, "GP-7")
	assert.Contains(t, result.Content, "Summary: 1 tasks validated | ✓ 1 passed | ✗ 0 failed")
}

func TestScreenTasksNothingFound(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	writeRules(t, cmdCtx.Services.Config.ProjectRoot(), "GP", `{"Backlog": ["worklog_not_empty"]}`)
	client := new(jira.MockClient)
	client.On("ListIssues", mock.Anything, mock.Anything).Return(nil, nil)

	result := run(t, ScreenTasks(Deps{Jira: client}), cmdCtx, "GP")

	assert.Equal(t, commands.Info("No tasks found for validation"), result)
}

func TestScreenTasksCancelled(t *testing.T) {
	cmdCtx, _ := newTestContext(t)
	writeRules(t, cmdCtx.Services.Config.ProjectRoot(), "GP", `{"Backlog": []}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ScreenTasks(Deps{Jira: new(jira.MockClient)}).Action(ctx, cmdCtx, "GP")

	assert.ErrorIs(t, err, context.Canceled)
}
