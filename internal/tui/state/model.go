package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/domain"
	"github.com/cristianoliveira/g-project/internal/errors"
	"github.com/cristianoliveira/g-project/internal/logging"
	"github.com/cristianoliveira/g-project/internal/settings"
	"github.com/cristianoliveira/g-project/internal/tui/render"
)

const (
	promptSymbol          = "> "
	chromeLines           = 4
	minViewportHeight     = 3
	defaultViewportWidth  = 80
	defaultViewportHeight = 20
)

// Submitter handles one submitted input line.
type Submitter interface {
	Submit(ctx context.Context, line string) error
}

// Completer returns full-line candidates for a partial command line.
type Completer interface {
	Complete(ctx context.Context, line string) []string
}

// SettingsApplier persists a value chosen in a dialog.
type SettingsApplier interface {
	Apply(current *settings.Settings, c app.Choice, value string) (*settings.Settings, error)
}

// Options are the collaborators of a Model. Completer may be nil.
type Options struct {
	Context   context.Context
	Session   Submitter
	Completer Completer
	Settings  SettingsApplier

	// Current is shared with the command services; dialog choices update it in place.
	Current *settings.Settings
	Model   string
}

type dialogState struct {
	choice app.Choice
	cursor int
}

// Model represents the TUI model for bubbletea.
type Model struct {
	ctx          context.Context
	uiState      *UIState
	session      Submitter
	completer    Completer
	settingsSvc  SettingsApplier
	current      *settings.Settings
	modelName    string
	errorHandler *errors.Transcript

	items    []domain.HistoryItem
	pending  *domain.HistoryItem
	dialog   *dialogState
	spinner  spinner.Model
	markdown *render.Markdown
	quitting bool
	exitCode int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) (*Model, error) {
	if opts.Session == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if opts.Settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	current := opts.Current
	if current == nil {
		current = settings.DefaultSettings()
	}

	m := &Model{
		ctx:         ctx,
		uiState:     NewUIState(),
		session:     opts.Session,
		completer:   opts.Completer,
		settingsSvc: opts.Settings,
		current:     current,
		modelName:   opts.Model,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.markdown = render.NewMarkdown(current.Theme, m.uiState.GetWidth())
	m.errorHandler = errors.NewTranscript(func(item domain.HistoryItem) {
		m.addItem(item)
	})
	return m, nil
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.markdown = render.NewMarkdown(m.current.Theme, msg.Width)
		m.refresh()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		*m.uiState.GetViewport(), cmd = m.uiState.GetViewport().Update(msg)
		return m, cmd
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.pending != nil || m.uiState.IsBusy() {
			m.refresh()
		}
		return m, cmd
	case itemAddedMsg:
		m.addItem(msg.item)
		return m, nil
	case clearedMsg:
		m.items = nil
		m.refresh()
		return m, nil
	case debugMsg:
		m.uiState.SetDebug(msg.text)
		return m, nil
	case pendingMsg:
		m.pending = msg.item
		m.refresh()
		return m, nil
	case dialogMsg:
		m.openDialog(msg.choice)
		return m, nil
	case quittingMsg:
		m.quitting = true
		m.items = append([]domain.HistoryItem(nil), msg.items...)
		m.pending = nil
		m.refresh()
		return m, nil
	case exitMsg:
		m.exitCode = msg.code
		return m, tea.Quit
	case submitDoneMsg:
		m.uiState.SetBusy(false)
		if msg.err != nil {
			logging.Debug("submitted line failed", "error", msg.err)
		}
		return m, nil
	case commandsReloadedMsg:
		if msg.err != nil {
			m.errorHandler.Warning(fmt.Sprintf("Reloading commands failed: %v", msg.err))
			return m, nil
		}
		m.uiState.SetDebug("Commands reloaded")
		return m, nil
	}
	return m, nil
}

// ExitCode is the code passed to the host's Exit.
func (m *Model) ExitCode() int {
	return m.exitCode
}

// Items returns the transcript.
func (m *Model) Items() []domain.HistoryItem {
	return append([]domain.HistoryItem(nil), m.items...)
}

func (m *Model) addItem(item domain.HistoryItem) {
	if m.quitting {
		return
	}
	m.items = append(m.items, item)
	m.refresh()
}

// submit hands line to the session off the event loop.
func (m *Model) submit(line string) tea.Cmd {
	m.uiState.SetBusy(true)
	m.uiState.SetDebug("")
	ctx, session := m.ctx, m.session
	return tea.Batch(func() tea.Msg {
		return submitDoneMsg{err: session.Submit(ctx, line)}
	}, m.spinner.Tick)
}

func (m *Model) complete() {
	if m.completer == nil {
		return
	}
	input := m.uiState.GetInput()
	candidates := m.completer.Complete(m.ctx, input.Value())
	switch len(candidates) {
	case 0:
		return
	case 1:
		input.SetValue(candidates[0] + " ")
	default:
		input.SetValue(commonPrefix(candidates))
		m.uiState.SetDebug(strings.Join(candidates, "  "))
	}
	input.CursorEnd()
}

func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
