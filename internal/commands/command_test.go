package commands

import (
	"testing"
	"time"

	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Matches(t *testing.T) {
	cmd := &Command{Name: "quit", AltName: "exit"}

	assert.True(t, cmd.Matches("quit"))
	assert.True(t, cmd.Matches("exit"))
	assert.False(t, cmd.Matches("q"))
	assert.False(t, cmd.Matches(""))
	assert.False(t, (&Command{Name: "clear"}).Matches(""), "empty alias must not match empty token")

	var nilCmd *Command
	assert.False(t, nilCmd.Matches("quit"))
}

func TestFind(t *testing.T) {
	list := []*Command{
		{Name: "compress", AltName: "summarize"},
		{Name: "stats", AltName: "usage"},
	}

	assert.Same(t, list[1], Find(list, "usage"))
	assert.Same(t, list[0], Find(list, "compress"))
	assert.Nil(t, Find(list, "missing"))
	assert.Nil(t, Find(nil, "stats"))
}

func TestUsageText(t *testing.T) {
	cmd := &Command{
		Name: "memory",
		SubCommands: []*Command{
			{Name: "show", Description: "Show memory"},
			{Name: "add", Description: "Add memory"},
		},
	}

	assert.Equal(t,
		"Command '/memory' requires a subcommand. Available:\n  - show: Show memory\n  - add: Add memory",
		UsageText(cmd))
	assert.True(t, cmd.HasSubCommands())
	assert.Equal(t, []string{"show", "add"}, Names(cmd.SubCommands))
}

func TestHasSubCommands_EmptyNamespace(t *testing.T) {
	assert.True(t, (&Command{Name: "ns", SubCommands: []*Command{}}).HasSubCommands())
	assert.False(t, (&Command{Name: "leaf"}).HasSubCommands())
	assert.Equal(t, "Command '/ns' requires a subcommand. Available:", UsageText(&Command{Name: "ns", SubCommands: []*Command{}}))
}

type recordingHandler struct {
	got string
}

func (h *recordingHandler) HandleTool(ToolResult) error       { h.got = "tool"; return nil }
func (h *recordingHandler) HandleMessage(MessageResult) error { h.got = "message"; return nil }
func (h *recordingHandler) HandleDialog(DialogResult) error   { h.got = "dialog"; return nil }
func (h *recordingHandler) HandleLoadHistory(LoadHistoryResult) error {
	h.got = "load_history"
	return nil
}
func (h *recordingHandler) HandleQuit(QuitResult) error { h.got = "quit"; return nil }

func TestActionResult_Accept(t *testing.T) {
	tests := []struct {
		name   string
		result ActionResult
		want   string
	}{
		{"tool", ScheduleTool("write_file", nil), "tool"},
		{"info", Info("hi"), "message"},
		{"error", Error("boom"), "message"},
		{"dialog", OpenDialog(DialogTheme), "dialog"},
		{"load history", LoadHistoryResult{}, "load_history"},
		{"quit", QuitResult{}, "quit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{}
			require.NoError(t, tt.result.Accept(h))
			assert.Equal(t, tt.want, h.got)
		})
	}
}

func TestMessageResult_ItemType(t *testing.T) {
	assert.Equal(t, domain.MessageTypeInfo, Info("x").(MessageResult).ItemType())
	assert.Equal(t, domain.MessageTypeError, Error("x").(MessageResult).ItemType())
}

type recordingDialogs struct {
	opened []string
}

func (d *recordingDialogs) OpenAuthDialog()   { d.opened = append(d.opened, "auth") }
func (d *recordingDialogs) OpenThemeDialog()  { d.opened = append(d.opened, "theme") }
func (d *recordingDialogs) OpenEditorDialog() { d.opened = append(d.opened, "editor") }

func TestDialogKind_Accept(t *testing.T) {
	d := &recordingDialogs{}

	DialogAuth.Accept(d)
	DialogTheme.Accept(d)
	DialogEditor.Accept(d)

	assert.Equal(t, []string{"auth", "theme", "editor"}, d.opened)
	assert.Equal(t, "editor", DialogEditor.String())
}

func TestDialogKind_ZeroValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		violation, ok := r.(*errors.ProtocolViolation)
		require.True(t, ok)
		assert.Equal(t, "dialog", violation.Kind)
	}()

	DialogKind{}.Accept(&recordingDialogs{})
}

func TestContextBuilder_BuildIsFresh(t *testing.T) {
	stats := domain.NewSessionStats(time.Now())
	ui := &RecordingUI{}
	builder := &ContextBuilder{
		Services: Services{Config: StaticConfig{Root: "/work"}},
		UI:       ui,
		Stats:    stats,
	}

	first := builder.Build()
	stats.RecordPrompt(1, 1)
	second := builder.Build()

	assert.NotSame(t, first, second)
	assert.Equal(t, 0, first.Session.Stats.PromptCount)
	assert.Equal(t, 1, second.Session.Stats.PromptCount)
	assert.Equal(t, "/work", second.Services.Config.ProjectRoot())
	assert.Same(t, ui, second.UI)
}

func TestContextBuilder_WithoutStats(t *testing.T) {
	builder := &ContextBuilder{}

	cmdCtx := builder.Build()

	require.NotNil(t, cmdCtx)
	assert.Equal(t, 0, cmdCtx.Session.Stats.PromptCount)
}
