package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/g-project/internal/config"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", tmp)
	t.Setenv("G_PROJECT_LOGGING_ENABLED", "true")
	config.Load()
	return tmp
}

func logDirOf(t *testing.T) string {
	t.Helper()
	return filepath.Join(config.Get("state_dir", ""), "logs")
}

func lastLogLine(t *testing.T) string {
	t.Helper()
	dir := logDirOf(t)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	data, err := os.ReadFile(filepath.Join(dir, entries[len(entries)-1].Name()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	return lines[len(lines)-1]
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("G_PROJECT_LOGGING_LEVEL", "warn")
	t.Setenv("G_PROJECT_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "warn", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("G_PROJECT_DEBUG", "true")
	t.Setenv("G_PROJECT_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	// debug wins over quiet
	t.Setenv("G_PROJECT_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("G_PROJECT_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("G_PROJECT_QUIET", "")
	t.Setenv("G_PROJECT_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp), "state_dir %s not in temp dir %s", stateDir, tmp)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.Info("test")
	logger.With("k", "v").Warn("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledCreatesFile(t *testing.T) {
	setupTest(t)

	cfg := FromGlobalConfig()
	cfg.Command = "chat cmd"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	entries, err := os.ReadDir(logDirOf(t))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	fname := entries[0].Name()
	require.True(t, strings.HasPrefix(fname, "g-project_"))
	require.Contains(t, fname, fmt.Sprintf("_PID%d_", os.Getpid()))
	require.True(t, strings.HasSuffix(fname, "_chat_cmd.log"))
	info, err := os.Stat(filepath.Join(logDirOf(t), fname))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestInitUsesExplicitDir(t *testing.T) {
	dir := t.TempDir()

	logger, err := Init(Config{Enabled: true, Level: "info", Dir: dir, Command: "x", PID: 1})
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t)

	cfg := FromGlobalConfig()
	cfg.SessionID = "session-123"
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("command handled", "input", "/stats", "count", 42)
	require.NoError(t, logger.Shutdown())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lastLogLine(t)), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "command handled", entry["msg"])
	require.Equal(t, float64(os.Getpid()), entry["pid"])
	require.Equal(t, "session-123", entry["session"])
	require.Equal(t, float64(42), entry["count"])
}

func TestRedaction(t *testing.T) {
	setupTest(t)

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)

	logger.Info("secrets", "api_key", "sk-123", "token", "xyz", "normal", "ok")
	require.NoError(t, logger.Shutdown())

	line := lastLogLine(t)
	require.Contains(t, line, `"api_key":"[REDACTED]"`)
	require.Contains(t, line, `"token":"[REDACTED]"`)
	require.Contains(t, line, `"normal":"ok"`)
}

func TestRedactionEdgeCases(t *testing.T) {
	r := newRedactor()

	require.Equal(t, []any{"PASSWORD", "[REDACTED]"}, r.redact([]any{"PASSWORD", "secret"}))
	require.Equal(t, []any{"api-token", "[REDACTED]"}, r.redact([]any{"api-token", "xyz"}))
	require.Equal(t, []any{"auth.type", "[REDACTED]"}, r.redact([]any{"auth.type", "xyz"}))

	require.Equal(t, []any{"apitoken", "xyz"}, r.redact([]any{"apitoken", "xyz"}))
	require.Equal(t, []any{"monkey", "value"}, r.redact([]any{"monkey", "value"}))
	require.Equal(t, []any{"secretary", "value"}, r.redact([]any{"secretary", "value"}))

	input := []any{"password", "hidden", "name", "john", "age", 30}
	require.Equal(t, []any{"password", "[REDACTED]", "name", "john", "age", 30}, r.redact(input))
	require.Equal(t, "hidden", input[1], "input must not be modified")

	require.Equal(t, []any{"password", "[REDACTED]", "extra"}, r.redact([]any{"password", "hidden", "extra"}))
	require.Empty(t, r.redact([]any{}))
}

func createLogFiles(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("g-project_20250101_12000%d_PID999_test.log", i))
		require.NoError(t, os.WriteFile(path, nil, 0600))
		old := time.Now().Add(-time.Duration(i+1) * time.Hour)
		require.NoError(t, os.Chtimes(path, old, old))
	}
}

func TestRotation(t *testing.T) {
	setupTest(t)
	t.Setenv("G_PROJECT_LOGGING_MAX_FILES", "2")
	config.Load()

	logDir, err := LogDir()
	require.NoError(t, err)
	createLogFiles(t, logDir, 3)
	require.NoError(t, os.WriteFile(filepath.Join(logDir, "unrelated.txt"), nil, 0600))

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	// oldest removed, two kept, one new, unrelated untouched
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	_, err = os.Stat(filepath.Join(logDir, "g-project_20250101_120002_PID999_test.log"))
	require.True(t, os.IsNotExist(err))
}

func TestRotationBelowLimitKeepsFiles(t *testing.T) {
	setupTest(t)
	t.Setenv("G_PROJECT_LOGGING_MAX_FILES", "0")
	config.Load()

	cfg := FromGlobalConfig()
	require.Equal(t, 10, cfg.MaxFiles, "validator should replace 0 with the default")

	logDir, err := LogDir()
	require.NoError(t, err)
	createLogFiles(t, logDir, 5)

	logger, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, logger.Shutdown())

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 6)
}

func TestWith(t *testing.T) {
	setupTest(t)

	logger, err := Init(FromGlobalConfig())
	require.NoError(t, err)

	logger.With("request_id", "abc").Info("with context")
	require.NoError(t, logger.Shutdown())

	require.Contains(t, lastLogLine(t), `"request_id":"abc"`)
}

func TestGlobalLoggerDefaultsToNoop(t *testing.T) {
	require.NotNil(t, GetGlobal())
	Info("not initialised")
	With("k", "v").Debug("still fine")
}

func TestLevelParsing(t *testing.T) {
	require.Equal(t, clog.DebugLevel, parseLevel("debug"))
	require.Equal(t, clog.InfoLevel, parseLevel("info"))
	require.Equal(t, clog.WarnLevel, parseLevel("warn"))
	require.Equal(t, clog.WarnLevel, parseLevel("warning"))
	require.Equal(t, clog.ErrorLevel, parseLevel("error"))
	require.Equal(t, clog.InfoLevel, parseLevel("unknown"))
}
