//go:build darwin

package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// osascriptController asks Apple Music and Spotify for the current track
type osascriptController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController() MediaController {
	return &osascriptController{}
}

func runOsascript(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mediaQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Players in priority order
var darwinPlayers = []string{"Music", "Spotify"}

func (a *osascriptController) GetMetadata() (title, artist, album, status string, err error) {
	for _, player := range darwinPlayers {
		script := fmt.Sprintf(`
			tell application "System Events"
				if not (exists (process "%[1]s")) then return ""
			end tell
			tell application "%[1]s"
				if player state is stopped then return ""
				set trackName to name of current track
				set trackArtist to artist of current track
				set trackAlbum to album of current track
				set playerState to player state as string
				return trackName & "|" & trackArtist & "|" & trackAlbum & "|" & playerState
			end tell`, player)

		output, err := runOsascript(script)
		if err != nil || output == "" {
			continue
		}
		return splitMetadata(output, "|")
	}
	return "", "", "", "", errNothingPlaying
}
