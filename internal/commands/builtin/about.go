package builtin

import (
	"context"
	"time"

	"github.com/cristianoliveira/g-project/internal/commands"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/version"
)

// About shows version, platform, model and session information.
func About() *commands.Command {
	return &commands.Command{
		Name:        "about",
		Description: "show version info",
		Action: func(ctx context.Context, cmdCtx *commands.Context, _ string) (commands.ActionResult, error) {
			info := &domain.AboutInfo{
				CLIVersion: version.String(),
				OSVersion:  version.Platform(),
			}
			if cfg := cmdCtx.Services.Config; cfg != nil {
				info.ModelVersion = cfg.Model()
				info.SessionID = cfg.SessionID()
			}
			if git := cmdCtx.Services.Git; git != nil {
				if branch, err := git.Branch(ctx); err == nil {
					info.GitBranch = branch
				}
			}
			if s := cmdCtx.Services.Settings; s != nil {
				info.AuthType = s.SelectedAuthType
			}
			cmdCtx.UI.AddItem(domain.HistoryItem{
				Type:      domain.MessageTypeAbout,
				About:     info,
				Timestamp: time.Now(),
			})
			return nil, nil
		},
	}
}
