package errors

import (
	"time"

	"github.com/cristianoliveira/g-project/internal/domain"
)

// Severity orders notices from most to least urgent.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeveritySuccess
)

// Notice is one message reported through a Transcript.
type Notice struct {
	Text     string
	Severity Severity
	At       time.Time
}

// Item renders n as a transcript line. Only errors keep the error type;
// warnings and successes are info items with a marker.
func (n Notice) Item() domain.HistoryItem {
	item := domain.HistoryItem{Type: domain.MessageTypeInfo, Text: n.Text, Timestamp: n.At}
	switch n.Severity {
	case SeverityError:
		item.Type = domain.MessageTypeError
	case SeverityWarning:
		item.Text = "Warning: " + n.Text
	case SeveritySuccess:
		item.Text = "✓ " + n.Text
	}
	return item
}

// Transcript reports notices as history items of a running session.
type Transcript struct {
	add func(domain.HistoryItem)
	now func() time.Time
}

var _ ErrorHandler = (*Transcript)(nil)

// NewTranscript returns a handler appending to a transcript through add.
// A nil add discards notices.
func NewTranscript(add func(domain.HistoryItem)) *Transcript {
	if add == nil {
		add = func(domain.HistoryItem) {}
	}
	return &Transcript{add: add, now: time.Now}
}

func (t *Transcript) Error(msg string)   { t.report(msg, SeverityError) }
func (t *Transcript) Warning(msg string) { t.report(msg, SeverityWarning) }
func (t *Transcript) Info(msg string)    { t.report(msg, SeverityInfo) }
func (t *Transcript) Success(msg string) { t.report(msg, SeveritySuccess) }

func (t *Transcript) report(msg string, sev Severity) {
	t.add(Notice{Text: msg, Severity: sev, At: t.now()}.Item())
}
