// Package state holds the bubbletea model of the interactive chat host.
package state

import (
	"github.com/cristianoliveira/g-project/internal/app"
	"github.com/cristianoliveira/g-project/internal/domain"
)

// itemAddedMsg appends an item to the transcript.
type itemAddedMsg struct {
	item domain.HistoryItem
}

// clearedMsg empties the transcript.
type clearedMsg struct{}

// debugMsg replaces the footer debug line.
type debugMsg struct {
	text string
}

// pendingMsg replaces the in-flight item.
type pendingMsg struct {
	item *domain.HistoryItem
}

// dialogMsg opens a settings dialog.
type dialogMsg struct {
	choice app.Choice
}

// quittingMsg replaces the transcript with the closing items.
type quittingMsg struct {
	items []domain.HistoryItem
}

// exitMsg ends the program.
type exitMsg struct {
	code int
}

// submitDoneMsg is sent when a submitted line has been fully handled.
type submitDoneMsg struct {
	err error
}

// commandsReloadedMsg is sent after the command list was reloaded.
type commandsReloadedMsg struct {
	err error
}
