//go:build !linux && !darwin

package main

// unsupportedController is used where no media player integration exists
type unsupportedController struct{}

// NewMediaController creates a new media controller for the current platform
func NewMediaController() MediaController {
	return unsupportedController{}
}

func (unsupportedController) GetMetadata() (title, artist, album, status string, err error) {
	return "", "", "", "", errNothingPlaying
}
