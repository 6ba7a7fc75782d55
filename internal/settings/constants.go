// Package settings provides user preferences persistence.
package settings

import "os"

const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644
	FileExtTOML              = ".toml"
)

// Theme constants. Values double as markdown rendering styles.
const (
	ThemeAuto       = "auto"
	ThemeDark       = "dark"
	ThemeLight      = "light"
	ThemeDracula    = "dracula"
	ThemeTokyoNight = "tokyo-night"
	ThemeASCII      = "ascii"
)

// Themes lists the selectable themes in display order.
var Themes = []string{ThemeAuto, ThemeDark, ThemeLight, ThemeDracula, ThemeTokyoNight, ThemeASCII}

// Editor constants.
const (
	EditorVim    = "vim"
	EditorNeovim = "nvim"
	EditorEmacs  = "emacs"
	EditorNano   = "nano"
	EditorVSCode = "code"
	EditorZed    = "zed"
)

// Editors lists the selectable editors in display order.
var Editors = []string{EditorVim, EditorNeovim, EditorEmacs, EditorNano, EditorVSCode, EditorZed}

// Auth type constants.
const (
	AuthGeminiAPIKey    = "gemini-api-key"
	AuthAnthropicAPIKey = "anthropic-api-key"
	AuthVertexAI        = "vertex-ai"
)

// AuthTypes lists the selectable authentication methods in display order.
var AuthTypes = []string{AuthGeminiAPIKey, AuthAnthropicAPIKey, AuthVertexAI}
