package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	return tmpDir
}

func TestLoadAndGet(t *testing.T) {
	setupConfigTest(t)
	Load()

	assert.Equal(t, "default", Get("missing", "default"))
	assert.Equal(t, ProviderGemini, Get("model_provider", ""))
	assert.Equal(t, DefaultGeminiModel, Get("model", ""))
	assert.Equal(t, 100, GetInt("quit_grace_ms", 0))
	assert.Equal(t, 30*time.Second, GetDuration("jira_timeout", 0))
	assert.True(t, GetBool("session_logging_enabled", false))
}

func TestDerivedPaths(t *testing.T) {
	tmpDir := setupConfigTest(t)
	Load()

	configDir := filepath.Join(tmpDir, "config", AppName)
	stateDir := filepath.Join(tmpDir, "state", AppName)
	assert.Equal(t, configDir, Get("config_dir", ""))
	assert.Equal(t, filepath.Join(configDir, "settings.toml"), Get("settings_path", ""))
	assert.Equal(t, filepath.Join(configDir, "memory.md"), Get("memory_file", ""))
	assert.Equal(t, filepath.Join(stateDir, "sessions.db"), Get("session_db", ""))
	assert.FileExists(t, filepath.Join(configDir, "config.toml"), "sample config should be created")
}

func TestConfigLoadingPrecedence(t *testing.T) {
	tmpDir := setupConfigTest(t)
	configFile := filepath.Join(tmpDir, "custom.toml")
	content := `
model_provider = "anthropic"
quit_grace_ms = 250
jira_bin = "/opt/jira"
debug = true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv(EnvConfigPath, configFile)
	t.Setenv("G_PROJECT_QUIT_GRACE_MS", "50")

	Load()

	assert.Equal(t, "50", Get("quit_grace_ms", ""), "environment should override config file")
	assert.Equal(t, "/opt/jira", Get("jira_bin", ""))
	assert.Equal(t, ProviderAnthropic, Get("model_provider", ""))
	assert.Equal(t, DefaultAnthropicModel, Get("model", ""), "provider default model")
	assert.True(t, GetBool("debug", false))
	assert.Equal(t, "", Get("config_path", ""), "config path variable is not a config key")
}

func TestValidatorsFallBackToDefaults(t *testing.T) {
	setupConfigTest(t)
	t.Setenv("G_PROJECT_MODEL_PROVIDER", "openai")
	t.Setenv("G_PROJECT_QUIT_GRACE_MS", "-5")
	t.Setenv("G_PROJECT_DEBUG", "maybe")
	t.Setenv("G_PROJECT_JIRA_TIMEOUT", "soon")
	t.Setenv("G_PROJECT_LOGGING_LEVEL", "WARN")

	Load()

	assert.Equal(t, ProviderGemini, Get("model_provider", ""))
	assert.Equal(t, "100", Get("quit_grace_ms", ""))
	assert.Equal(t, "false", Get("debug", ""))
	assert.Equal(t, "30s", Get("jira_timeout", ""))
	assert.Equal(t, "warn", Get("logging_level", ""))
}

func TestSetAndAll(t *testing.T) {
	setupConfigTest(t)
	Load()

	Set("workdir", "/tmp/project")

	all := All()
	assert.Equal(t, "/tmp/project", all["workdir"])
	all["workdir"] = "changed"
	assert.Equal(t, "/tmp/project", Get("workdir", ""), "All must return a copy")
}

func TestHandle(t *testing.T) {
	setupConfigTest(t)
	t.Setenv("G_PROJECT_WORKDIR", "/work/project")
	t.Setenv("G_PROJECT_QUIT_GRACE_MS", "20")
	Load()

	h := NewHandle("session-1")

	assert.Equal(t, "/work/project", h.ProjectRoot())
	assert.Equal(t, "session-1", h.SessionID())
	assert.Equal(t, DefaultGeminiModel, h.Model())
	assert.Equal(t, ProviderGemini, h.Provider())
	assert.Equal(t, 20*time.Millisecond, h.QuitGracePeriod())
	assert.Equal(t, Get("memory_file", ""), h.MemoryFile())
	assert.Equal(t, "fallback", h.Get("unknown", "fallback"))
}

func TestValidatorRules(t *testing.T) {
	check := getValidator("jira_timeout")
	require.NotNil(t, check)

	got, err := check("jira_timeout", "", "30s")
	require.NoError(t, err)
	assert.Equal(t, "30s", got, "empty value keeps the default")

	got, err = check("jira_timeout", "90s", "30s")
	require.NoError(t, err)
	assert.Equal(t, "1m30s", got)

	_, err = check("jira_timeout", "-1s", "30s")
	assert.ErrorContains(t, err, "e.g. 30s or 2m")

	got, err = getValidator("watch_settings")("watch_settings", "Off", "true")
	require.NoError(t, err)
	assert.Equal(t, "false", got)

	_, err = getValidator("model_provider")("model_provider", "openai", ProviderGemini)
	assert.ErrorContains(t, err, "gemini, anthropic")

	assert.Nil(t, getValidator("jira_bin"))
}
