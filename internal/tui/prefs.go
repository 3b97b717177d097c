package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Prefs holds user preferences for the TUI that persist across sessions.
type Prefs struct {
	// LastTarget pre-fills the URL prompt.
	LastTarget string `json:"last_target,omitempty"`
	// StartOnCI opens the result view on the CI config tab.
	StartOnCI bool `json:"start_on_ci,omitempty"`
}

// prefsPath returns the path to the TUI preferences file.
func prefsPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "a11yscan", "tui_prefs.json"), nil
}

// LoadPrefs loads user preferences from disk, returning defaults if not found.
func LoadPrefs() Prefs {
	var prefs Prefs
	path, err := prefsPath()
	if err != nil {
		return prefs
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return prefs
	}
	_ = json.Unmarshal(data, &prefs) //nolint:errcheck // fall back to defaults
	return prefs
}

// SavePrefs persists user preferences to disk.
func SavePrefs(prefs Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
