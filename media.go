package main

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// mediaQueryTimeout bounds one player query so a hung player cannot stall polling
const mediaQueryTimeout = 2 * time.Second

// errNothingPlaying is returned when no player has a current track
var errNothingPlaying = errors.New("no song playing")

// MediaController reads the current track from the platform's media player
type MediaController interface {
	GetMetadata() (title, artist, album, status string, err error)
}

// splitMetadata parses "title<sep>artist<sep>album<sep>status" player output
func splitMetadata(output, sep string) (title, artist, album, status string, err error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return "", "", "", "", errNothingPlaying
	}

	parts := strings.Split(output, sep)
	if len(parts) != 4 {
		return "", "", "", "", fmt.Errorf("unexpected metadata format: got %d parts, expected 4", len(parts))
	}

	return strings.TrimSpace(parts[0]),
		strings.TrimSpace(parts[1]),
		strings.TrimSpace(parts[2]),
		strings.TrimSpace(parts[3]),
		nil
}
