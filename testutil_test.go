package main

import (
	"testing"

	"github.com/charmbracelet/bubbletea"

	"marqueetext/marquee"
)

// assertError is a test helper that checks if an error occurred and fails the test if not
func assertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error: %s, got nil", msg)
	}
}

// assertNoError is a test helper that fails the test if an error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// assertEqual is a generic test helper for comparing values
func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// fakeMediaController returns canned metadata
type fakeMediaController struct {
	title, artist, album, status string
	err                          error
}

func (f *fakeMediaController) GetMetadata() (title, artist, album, status string, err error) {
	return f.title, f.artist, f.album, f.status, f.err
}

// testConfig returns a valid static-text config and installs it globally
func testConfig(t *testing.T, text string, width int) Config {
	t.Helper()
	cfg := defaultConfig()
	cfg.Text.Content = text
	cfg.UI.Width = width
	if errs := validateConfig(&cfg); len(errs) > 0 {
		t.Fatalf("test config invalid: %v", errs)
	}
	config.Set(cfg)
	return cfg
}

// pendingHandle returns the single scheduled timer action of the session
func pendingHandle(t *testing.T, s *session) marquee.Handle {
	t.Helper()
	if len(s.timer.actions) != 1 {
		t.Fatalf("expected exactly one scheduled action, got %d", len(s.timer.actions))
	}
	for h := range s.timer.actions {
		return h
	}
	return 0
}

// isQuit reports whether cmd is tea.Quit
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
