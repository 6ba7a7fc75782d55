package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// UIState manages the layout state of the chat screen: the transcript
// viewport, the prompt input and the terminal size.
type UIState struct {
	viewport viewport.Model
	input    textinput.Model
	width    int
	height   int
	busy     bool
	debug    string
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	input := textinput.New()
	input.Prompt = promptSymbol
	input.Placeholder = "Type a message or a /command"
	input.CharLimit = 0
	input.Focus()
	u := &UIState{
		input:  input,
		width:  defaultViewportWidth,
		height: defaultViewportHeight + chromeLines,
	}
	u.UpdateViewportSize()
	return u
}

// GetViewport returns the transcript viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetInput returns the prompt input.
func (u *UIState) GetInput() *textinput.Model {
	return &u.input
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetSize records the terminal size and resizes the viewport and input.
func (u *UIState) SetSize(width, height int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight + chromeLines
	}
	u.UpdateViewportSize()
}

// UpdateViewportSize sizes the viewport to the space left by the chrome.
// The caller must set the content again.
func (u *UIState) UpdateViewportSize() {
	viewportHeight := u.height - chromeLines
	if viewportHeight < minViewportHeight {
		viewportHeight = minViewportHeight
	}
	u.viewport = viewport.New(u.width, viewportHeight)
	u.input.Width = u.width - len(promptSymbol) - 1
}

// IsBusy reports whether a submitted line is still being handled.
func (u *UIState) IsBusy() bool {
	return u.busy
}

// SetBusy marks the input as blocked while a line is handled.
func (u *UIState) SetBusy(busy bool) {
	u.busy = busy
}

// GetDebug returns the footer debug line.
func (u *UIState) GetDebug() string {
	return u.debug
}

// SetDebug replaces the footer debug line.
func (u *UIState) SetDebug(msg string) {
	u.debug = msg
}
