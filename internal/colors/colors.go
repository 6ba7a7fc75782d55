// Package colors prints coloured console notices and mirrors them into the
// session log.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ANSI colours. The transcript renderer reuses them for its styles.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger receives a copy of every console notice.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// notice describes how one kind of console message looks and where it goes.
type notice struct {
	kind   string
	prefix string
	color  string
	stderr bool
	mirror func(Logger, string)
}

var (
	errorNotice   = notice{kind: "error", prefix: "Error:", color: Red, stderr: true, mirror: func(l Logger, m string) { l.Error(m) }}
	warningNotice = notice{kind: "warning", prefix: "Warning:", color: Yellow, stderr: true, mirror: func(l Logger, m string) { l.Warn(m) }}
	successNotice = notice{kind: "success", prefix: checkmark, color: Green, mirror: func(l Logger, m string) { l.Info(m, "type", "success") }}
	infoNotice    = notice{kind: "info", color: Blue, mirror: func(l Logger, m string) { l.Info(m) }}
	debugNotice   = notice{kind: "debug", prefix: "Debug:", color: Cyan, stderr: true, mirror: func(l Logger, m string) { l.Debug(m) }}
)

var (
	debugEnabled atomic.Bool

	mu     sync.RWMutex
	logger Logger
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	switch os.Getenv("G_PROJECT_DEBUG") {
	case "true", "1":
		debugEnabled.Store(true)
	}
}

// SetDebug turns Debug and structured output on or off.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

// SetLogger mirrors console notices into l. Nil stops mirroring.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetOutput redirects console output. Nil writers restore the process
// streams. The chat screen silences the console while it owns the terminal.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func writers() (io.Writer, io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	return stdout, stderr
}

func (n notice) print(msgs []string) {
	msg := strings.Join(msgs, " ")
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		n.mirror(l, msg)
	}

	out, errOut := writers()
	w := out
	if n.stderr {
		w = errOut
	}
	line := n.color + msg + Reset
	if n.prefix != "" {
		line = n.color + n.prefix + Reset + " " + msg + Reset
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		// plain stderr, never back through a notice
		fmt.Fprintf(os.Stderr, "failed to print %s message: %v\n", n.kind, err)
	}
}

// Error prints msgs to stderr in red.
func Error(msgs ...string) { errorNotice.print(msgs) }

// Warning prints msgs to stderr in yellow.
func Warning(msgs ...string) { warningNotice.print(msgs) }

// Success prints msgs to stdout after a green checkmark.
func Success(msgs ...string) { successNotice.print(msgs) }

// Info prints msgs to stdout in blue.
func Info(msgs ...string) { infoNotice.print(msgs) }

// Debug prints msgs to stderr when debug output is on.
func Debug(msgs ...string) {
	if debugEnabled.Load() {
		debugNotice.print(msgs)
	}
}
