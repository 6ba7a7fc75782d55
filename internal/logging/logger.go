package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/g-project/internal/colors"
)

// Logger writes structured entries to the session log.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a child logger that adds args to every entry.
	With(args ...any) Logger
	// Shutdown closes the log file. Children share it.
	Shutdown() error
}

// logFileHandle is shared by a logger and all of its children.
type logFileHandle struct {
	path  string
	file  *os.File
	close sync.Once
	err   error
}

func (h *logFileHandle) shutdown() error {
	h.close.Do(func() { h.err = h.file.Close() })
	return h.err
}

type fileLogger struct {
	out      *clog.Logger
	handle   *logFileHandle
	redactor *redactor
}

// Init opens a new JSON log file for cfg, rotating old ones first. A
// disabled cfg yields a logger that drops everything.
func Init(cfg Config) (Logger, error) {
	if !cfg.Enabled {
		return noopLogger{}, nil
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(); err != nil {
			return nil, fmt.Errorf("resolving log directory: %w", err)
		}
	}
	if err := rotate(dir, cfg.MaxFiles); err != nil {
		fmt.Fprintf(os.Stderr, "log rotation failed: %v\n", err)
	}

	path := filepath.Join(dir, logFileName(cfg, time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	out := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(cfg.Level),
		Formatter:       clog.JSONFormatter,
	}).With("pid", cfg.PID, "command", cfg.Command)
	if cfg.SessionID != "" {
		out = out.With("session", cfg.SessionID)
	}
	return &fileLogger{out: out, handle: &logFileHandle{path: path, file: f}, redactor: newRedactor()}, nil
}

// logFileName is g-project_<timestamp>_PID<pid>_<command>.log.
func logFileName(cfg Config, at time.Time) string {
	command := strings.ReplaceAll(cfg.Command, " ", "_")
	return fmt.Sprintf("%s%s_PID%d_%s%s", logFilePrefix, at.Format("20060102_150405"), cfg.PID, command, logFileSuffix)
}

var levels = map[string]clog.Level{
	"debug":   clog.DebugLevel,
	"info":    clog.InfoLevel,
	"warn":    clog.WarnLevel,
	"warning": clog.WarnLevel,
	"error":   clog.ErrorLevel,
}

// parseLevel maps a level name to clog, defaulting to info.
func parseLevel(name string) clog.Level {
	if lvl, ok := levels[strings.ToLower(name)]; ok {
		return lvl
	}
	return clog.InfoLevel
}

func (l *fileLogger) Debug(msg string, args ...any) { l.emit(clog.DebugLevel, msg, args) }
func (l *fileLogger) Info(msg string, args ...any)  { l.emit(clog.InfoLevel, msg, args) }
func (l *fileLogger) Warn(msg string, args ...any)  { l.emit(clog.WarnLevel, msg, args) }
func (l *fileLogger) Error(msg string, args ...any) { l.emit(clog.ErrorLevel, msg, args) }

func (l *fileLogger) emit(level clog.Level, msg string, args []any) {
	l.out.Log(level, msg, l.redactor.redact(args)...)
}

func (l *fileLogger) With(args ...any) Logger {
	return &fileLogger{out: l.out.With(l.redactor.redact(args)...), handle: l.handle, redactor: l.redactor}
}

func (l *fileLogger) Shutdown() error {
	return l.handle.shutdown()
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (n noopLogger) With(...any) Logger { return n }
func (noopLogger) Shutdown() error      { return nil }

var (
	global     Logger = noopLogger{}
	globalMu   sync.RWMutex
	globalOnce sync.Once
)

// InitGlobal opens the process-wide session log from the loaded
// configuration and mirrors console output into it. Only the first call
// has an effect.
func InitGlobal(sessionID string) error {
	var err error
	globalOnce.Do(func() {
		cfg := FromGlobalConfig()
		cfg.SessionID = sessionID
		var l Logger
		if l, err = Init(cfg); err != nil {
			return
		}
		globalMu.Lock()
		global = l
		globalMu.Unlock()

		colors.SetLogger(l)
		if path := CurrentLogFile(); path != "" {
			colors.Debug("Logging to file:", path)
		}
	})
	return err
}

// GetGlobal returns the process-wide logger. It is a no-op logger until
// InitGlobal succeeds.
func GetGlobal() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

func Debug(msg string, args ...any) { GetGlobal().Debug(msg, args...) }
func Info(msg string, args ...any)  { GetGlobal().Info(msg, args...) }
func Warn(msg string, args ...any)  { GetGlobal().Warn(msg, args...) }
func Error(msg string, args ...any) { GetGlobal().Error(msg, args...) }
func With(args ...any) Logger       { return GetGlobal().With(args...) }

// ShutdownGlobal closes the process-wide log file.
func ShutdownGlobal() error {
	return GetGlobal().Shutdown()
}

// CurrentLogFile returns the path of the process-wide log file, or "" when
// file logging is off.
func CurrentLogFile() string {
	if l, ok := GetGlobal().(*fileLogger); ok {
		return l.handle.path
	}
	return ""
}
