package colors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredDebugIsGatedByDebugMode(t *testing.T) {
	EnableStructuredLogging()
	defer EnableStructuredLogging()
	SetDebug(false)
	defer SetDebug(false)

	_, errOut := captureOutput(t, func() {
		StructuredDebug(Event{Component: "colors", Action: "debug_disabled", Status: "skipped"})
	})
	assert.Empty(t, errOut)

	SetDebug(true)
	_, errOut = captureOutput(t, func() {
		StructuredDebug(Event{Component: "colors", Action: "debug_enabled", Status: "written"})
	})
	assert.Contains(t, errOut, `"level":"debug"`)
	assert.Contains(t, errOut, `"action":"debug_enabled"`)
}

func TestStructuredLoggingCanBeDisabled(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)
	DisableStructuredLogging()
	defer EnableStructuredLogging()

	_, errOut := captureOutput(t, func() {
		StructuredInfo(Event{Component: "colors", Action: "disabled", Status: "skipped"})
	})

	assert.Empty(t, errOut)
}

func TestStructuredErrorIncludesError(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	_, errOut := captureOutput(t, func() {
		StructuredError(Event{
			Component: "dispatch",
			Action:    "handle",
			Status:    "failed",
			Err:       errors.New("jira missing"),
			ID:        "/screen-tasks",
			Fields:    map[string]interface{}{"args": "ABC"},
		})
	})

	assert.Contains(t, errOut, `"error":"jira missing"`)
	assert.Contains(t, errOut, `"id":"/screen-tasks"`)
	assert.Contains(t, errOut, `"args":"ABC"`)
}
