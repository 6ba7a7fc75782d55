package builtin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/jira"
)

// WriteFileTool is the tool scheduled by /start-project.
const WriteFileTool = "write_file"

// SettingsDir is the per-project directory holding settings.md and the
// validation rule files.
const SettingsDir = "settings"

// lastStandUpLayout renders times like 16-Jul-2025 19:24:16.
const lastStandUpLayout = "02-Jan-2006 15:04:05"

const roleDescription = `#Role description
You are Jira manager. Your goal is help run all processes for the team.
Please try to provide all information in user friendly way.
If there is any super complex technical terms explain them with simple words or analogies.
If there is any factual information like ticket moved from status x to status y try to provide what it mean for the business, like user xyz started verification of next functionality..


#Running instructions
- Do not print running logs. Just final results
`

// GetToKnowMyProject summarizes a Jira project: server time, statuses and issue types.
func GetToKnowMyProject(deps Deps) *commands.Command {
	if deps.Jira == nil {
		return nil
	}
	return &commands.Command{
		Name:        "get-to-know-my-project",
		Description: "Get project information including time, statuses, and issue types. Usage: /get-to-know-my-project <PROJECT_HANDLE>",
		Action: func(ctx context.Context, _ *commands.Context, args string) (commands.ActionResult, error) {
			key := strings.TrimSpace(args)
			if key == "" {
				return commands.Error("Please provide a project handle. Usage: /get-to-know-my-project <PROJECT_HANDLE>\n\nExample: /get-to-know-my-project GP"), nil
			}
			info, err := jira.FetchProjectInfo(ctx, deps.Jira, key)
			if err != nil {
				if jira.IsProjectNotFound(err) || strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "404") {
					return commands.Error(fmt.Sprintf("Ooops seems to be project {%s} do not exist", key)), nil
				}
				return commands.Error("Error getting project information: " + err.Error()), nil
			}
			return commands.Info(info.Markdown()), nil
		},
	}
}

// StartProject schedules the creation of settings/settings.md for a project.
func StartProject(deps Deps) *commands.Command {
	return &commands.Command{
		Name:        "start-project",
		Description: "Initialize project settings at settings/settings.md with Jira integration. Usage: /start-project <PROJECT_HANDLE> <JIRA_USER>",
		Action: func(_ context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
			fields := strings.Fields(args)
			if len(fields) < 2 {
				return commands.Error("Usage: /start-project <PROJECT_HANDLE> <JIRA_USER>\n\nExample: /start-project AT john.doe@company.com"), nil
			}
			root := ""
			if cfg := cmdCtx.Services.Config; cfg != nil {
				root = cfg.ProjectRoot()
			}
			return commands.ScheduleTool(WriteFileTool, map[string]any{
				"file_path": filepath.Join(root, SettingsDir, "settings.md"),
				"content":   ProjectSettings(fields[0], fields[1], deps.now()),
			}), nil
		},
	}
}

// ProjectSettings renders settings.md. LAST_STAND_UP is set 24 hours before now.
func ProjectSettings(project, user string, now time.Time) string {
	lastStandUp := now.Add(-24 * time.Hour).Format(lastStandUpLayout)
	return fmt.Sprintf("# Project Settings\nPROJECT_HANDLE=%s\nJIRA_USER=%s\nLAST_STAND_UP=%s\n\n\n%s",
		project, user, lastStandUp, roleDescription)
}

// ScreenTasks validates the project's tasks against settings/<KEY>_validation.json.
// The registry only offers it when such a file exists.
func ScreenTasks(deps Deps) *commands.Command {
	if deps.Jira == nil {
		return nil
	}
	return &commands.Command{
		Name:        "screen-tasks",
		Description: "Validate Jira tasks based on project validation rules. Usage: /screen-tasks <PROJECT_HANDLE>",
		Action: func(ctx context.Context, cmdCtx *commands.Context, args string) (commands.ActionResult, error) {
			key := strings.TrimSpace(args)
			if key == "" {
				return commands.Error("Usage: /screen-tasks <PROJECT_HANDLE>\n\nExample: /screen-tasks GP"), nil
			}
			root := ""
			if cfg := cmdCtx.Services.Config; cfg != nil {
				root = cfg.ProjectRoot()
			}
			rules, err := jira.LoadRules(filepath.Join(root, SettingsDir, key+jira.ValidationFileSuffix))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return commands.Error("Please create validation rules for this project"), nil
				}
				return commands.Error("Error reading validation file: " + err.Error()), nil
			}
			report, err := jira.NewScreener(deps.Jira).Screen(ctx, key, rules)
			if err != nil {
				return nil, fmt.Errorf("screening %s: %w", key, err)
			}
			return commands.Info(report.Render()), nil
		},
	}
}
