package colors

import (
	"sort"
	"sync/atomic"

	clog "github.com/charmbracelet/log"
)

var structuredOff atomic.Bool

// Event is one machine-readable trace line: which component did what and
// how it ended.
type Event struct {
	Component string
	Action    string
	Status    string
	Err       error
	ID        string
	Fields    map[string]interface{}
}

func (ev Event) keyvals() []any {
	kv := []any{"component", ev.Component, "action", ev.Action, "status", ev.Status}
	if ev.ID != "" {
		kv = append(kv, "id", ev.ID)
	}
	if ev.Err != nil {
		kv = append(kv, "error", ev.Err.Error())
	}
	keys := make([]string, 0, len(ev.Fields))
	for k := range ev.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv = append(kv, k, ev.Fields[k])
	}
	return kv
}

// DisableStructuredLogging stops trace lines. The chat screen turns them
// off because they would tear its layout.
func DisableStructuredLogging() { structuredOff.Store(true) }

// EnableStructuredLogging resumes trace lines.
func EnableStructuredLogging() { structuredOff.Store(false) }

// StructuredLog writes ev as a JSON line to stderr in debug mode. Callers
// redact sensitive fields themselves.
func StructuredLog(level clog.Level, ev Event) {
	if !debugEnabled.Load() || structuredOff.Load() {
		return
	}
	_, errOut := writers()
	out := clog.NewWithOptions(errOut, clog.Options{
		Level:           clog.DebugLevel,
		ReportTimestamp: true,
		Formatter:       clog.JSONFormatter,
	})
	out.Log(level, ev.Component+"."+ev.Action, ev.keyvals()...)
}

func StructuredDebug(ev Event) { StructuredLog(clog.DebugLevel, ev) }
func StructuredInfo(ev Event)  { StructuredLog(clog.InfoLevel, ev) }
func StructuredWarn(ev Event)  { StructuredLog(clog.WarnLevel, ev) }
func StructuredError(ev Event) { StructuredLog(clog.ErrorLevel, ev) }
