package tui

import (
	"testing"
)

func TestPrefs_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if got := LoadPrefs(); got != (Prefs{}) {
		t.Fatalf("expected zero prefs before first save, got %+v", got)
	}
	want := Prefs{LastTarget: "https://example.com", StartOnCI: true}
	if err := SavePrefs(want); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}
	if got := LoadPrefs(); got != want {
		t.Fatalf("LoadPrefs = %+v, want %+v", got, want)
	}
}
