//go:build linux

package main

import (
	"context"
	"os/exec"
)

// playerctlController reads MPRIS metadata through playerctl
type playerctlController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController() MediaController {
	return &playerctlController{}
}

func (p *playerctlController) GetMetadata() (title, artist, album, status string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), mediaQueryTimeout)
	defer cancel()

	// Tabs never appear in track metadata, pipes do
	out, err := exec.CommandContext(ctx, "playerctl", "metadata",
		"--format", "{{title}}\t{{artist}}\t{{album}}\t{{status}}").Output()
	if err != nil {
		// No player running or nothing playing
		return "", "", "", "", errNothingPlaying
	}
	return splitMetadata(string(out), "\t")
}
