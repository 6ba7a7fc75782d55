// Package config loads the g-project configuration and exposes it as
// string keys.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/g-project/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName names the config and state directories.
	AppName = "g-project"

	// EnvPrefix prefixes every environment override, e.g. G_PROJECT_MODEL.
	EnvPrefix = "G_PROJECT_"

	// EnvConfigPath points at an explicit configuration file.
	EnvConfigPath = EnvPrefix + "CONFIG_PATH"
)

const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644
	FileExtTOML              = ".toml"
)

// Model providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"

	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultAnthropicModel = "claude-sonnet-4-5"
)

// defaults lists every known key with its default. Keys derived from the
// directories are filled in by computeDirs.
var defaults = []struct{ key, value string }{
	{"model_provider", ProviderGemini},
	{"model", ""},
	{"max_output_tokens", "4096"},
	{"quit_grace_ms", "100"},
	{"jira_bin", "jira"},
	{"jira_timeout", "30s"},
	{"session_logging_enabled", "true"},
	{"watch_settings", "true"},
	{"history_limit", "500"},
	{"logging_enabled", "false"},
	{"logging_level", "info"},
	{"logging_max_files", "10"},
	{"debug", "false"},
	{"quiet", "false"},
}

var (
	mu sync.RWMutex
	// config holds the effective values, configMap the defaults they were
	// validated against.
	config    map[string]string
	configMap map[string]string
)

func init() {
	initValidators()
}

// Load rebuilds the configuration from defaults, the TOML config file and
// G_PROJECT_* environment variables, in increasing precedence.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	configMap = baseDefaults()
	config = make(map[string]string, len(configMap))
	for k, v := range configMap {
		config[k] = v
	}
	// config_dir may come from the environment and decides where the file is
	mergeEnv()
	mergeFile(configFilePath())
	mergeEnv()
	validate()
	computeDirs()
	writeSampleConfig()
}

func baseDefaults() map[string]string {
	home, _ := os.UserHomeDir()
	m := map[string]string{
		"config_dir": filepath.Join(xdgDir("XDG_CONFIG_HOME", home, ".config"), AppName),
		"state_dir":  filepath.Join(xdgDir("XDG_STATE_HOME", home, ".local", "state"), AppName),
	}
	for _, d := range defaults {
		m[d.key] = d.value
	}
	return m
}

func xdgDir(env, home string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// configFilePath is the explicit G_PROJECT_CONFIG_PATH, or config.toml in
// config_dir when it exists.
func configFilePath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	p := filepath.Join(config["config_dir"], "config"+FileExtTOML)
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func mergeFile(path string) {
	if path == "" || !strings.EqualFold(filepath.Ext(path), FileExtTOML) {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", path, err))
		return
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", path, err))
		return
	}
	for k, v := range raw {
		key := strings.ToLower(k)
		str, ok := scalarString(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = str
	}
}

// scalarString flattens the TOML scalars a config value may hold.
func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case int:
		return strconv.Itoa(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func mergeEnv() {
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == EnvConfigPath || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		config[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))] = value
	}
}

// validate replaces every value its rule rejects with the default.
func validate() {
	for key, value := range config {
		check := getValidator(key)
		if check == nil {
			continue
		}
		fallback := configMap[key]
		normalized, err := check(key, value, fallback)
		if err != nil {
			warnInvalid(key, err, fallback)
			normalized = fallback
		}
		config[key] = normalized
	}
}

// computeDirs derives file locations and the provider's default model
// unless they were set explicitly.
func computeDirs() {
	derived := map[string]string{}
	if dir := config["config_dir"]; dir != "" {
		derived["settings_path"] = filepath.Join(dir, "settings"+FileExtTOML)
		derived["memory_file"] = filepath.Join(dir, "memory.md")
	}
	if dir := config["state_dir"]; dir != "" {
		derived["session_db"] = filepath.Join(dir, "sessions.db")
		derived["history_file"] = filepath.Join(dir, "history")
	}
	derived["model"] = DefaultGeminiModel
	if config["model_provider"] == ProviderAnthropic {
		derived["model"] = DefaultAnthropicModel
	}
	for k, v := range derived {
		if config[k] == "" {
			config[k] = v
		}
	}
}

// writeSampleConfig writes the defaults to config.toml the first time the
// config directory is used.
func writeSampleConfig() {
	dir := config["config_dir"]
	if dir == "" {
		return
	}
	path := filepath.Join(dir, "config"+FileExtTOML)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		colors.Debug(fmt.Sprintf("unable to create config dir %s: %v", dir, err))
		return
	}

	sample := make(map[string]any, len(configMap))
	for k, v := range configMap {
		if v != "" {
			sample[k] = typedValue(v)
		}
	}
	data, err := toml.Marshal(sample)
	if err != nil {
		colors.Warning(fmt.Sprintf("unable to marshal sample config: %v", err))
		return
	}
	header := "# g-project configuration (TOML). Environment variables named\n# G_PROJECT_<KEY> override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		colors.Warning(fmt.Sprintf("unable to write sample config to %s: %v", path, err))
	}
}

// typedValue gives numbers and booleans their TOML type in the sample.
func typedValue(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	b, ok := parseFlag(val)
	if !ok {
		return defaultValue
	}
	return b
}

// GetDuration returns a configuration value as a duration, or default.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok || val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultValue
	}
	return d
}

// Set overrides a single value for the rest of the process, e.g. from a CLI flag.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	if config == nil {
		config = make(map[string]string)
	}
	config[key] = value
}

// All returns a copy of the loaded configuration.
func All() map[string]string {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]string, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}
