// Package domain holds the transcript, conversation and usage types shared by
// the command core and its hosts.
package domain

import (
	"fmt"
	"time"
)

// MessageType identifies how a display item is rendered in the transcript.
type MessageType string

const (
	MessageTypeUser        MessageType = "user"
	MessageTypeInfo        MessageType = "info"
	MessageTypeError       MessageType = "error"
	MessageTypeGemini      MessageType = "gemini"
	MessageTypeAbout       MessageType = "about"
	MessageTypeStats       MessageType = "stats"
	MessageTypeQuit        MessageType = "quit"
	MessageTypeCompression MessageType = "compression"
	MessageTypeTool        MessageType = "tool"
)

// IsValid checks if the message type is known.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeUser, MessageTypeInfo, MessageTypeError, MessageTypeGemini,
		MessageTypeAbout, MessageTypeStats, MessageTypeQuit, MessageTypeCompression,
		MessageTypeTool:
		return true
	default:
		return false
	}
}

// String returns the string representation of the message type.
func (t MessageType) String() string {
	return string(t)
}

// HistoryItem is a single entry of the visible transcript.
// Only the payload matching Type is expected to be set.
type HistoryItem struct {
	ID          int              `json:"id"`
	Type        MessageType      `json:"type"`
	Text        string           `json:"text,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
	About       *AboutInfo       `json:"about,omitempty"`
	Duration    time.Duration    `json:"duration,omitempty"`
	Compression *CompressionInfo `json:"compression,omitempty"`
}

// AboutInfo is the payload of an about item.
type AboutInfo struct {
	CLIVersion   string `json:"cliVersion"`
	OSVersion    string `json:"osVersion"`
	ModelVersion string `json:"modelVersion"`
	AuthType     string `json:"authType"`
	SessionID    string `json:"sessionId"`
	GitBranch    string `json:"gitBranch,omitempty"`
}

// CompressionInfo describes the outcome of a history compression.
type CompressionInfo struct {
	IsPending          bool `json:"isPending"`
	OriginalTokenCount int  `json:"originalTokenCount"`
	NewTokenCount      int  `json:"newTokenCount"`
}

// NewTextItem returns a plain text item of the given type stamped with now.
func NewTextItem(t MessageType, text string) HistoryItem {
	return HistoryItem{Type: t, Text: text, Timestamp: time.Now()}
}

// Summary renders the item as a single line of plain text.
// Hosts without rich rendering use it for every item type.
func (h HistoryItem) Summary() string {
	switch h.Type {
	case MessageTypeAbout:
		if h.About == nil {
			return "About"
		}
		line := fmt.Sprintf("About: CLI %s | OS %s | Model %s | Auth %s | Session %s",
			h.About.CLIVersion, h.About.OSVersion, h.About.ModelVersion, h.About.AuthType, h.About.SessionID)
		if h.About.GitBranch != "" {
			line += " | Branch " + h.About.GitBranch
		}
		return line
	case MessageTypeStats:
		return fmt.Sprintf("Session duration: %s", FormatDuration(h.Duration))
	case MessageTypeQuit:
		return fmt.Sprintf("Agent powering down. Session lasted %s. Goodbye!", FormatDuration(h.Duration))
	case MessageTypeCompression:
		if h.Compression == nil || h.Compression.IsPending {
			return "Compressing chat history..."
		}
		return fmt.Sprintf("Chat history compressed from %d to %d tokens.",
			h.Compression.OriginalTokenCount, h.Compression.NewTokenCount)
	default:
		return h.Text
	}
}

// FormatDuration renders a duration as "1h 2m 3s", dropping leading zero units.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
