package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"marqueetext/marquee"
)

func (m model) View() string {
	// Get config snapshot for rendering
	cfg := config.Get()

	// Use lipgloss.Color to validate the color input
	color := lipgloss.Color(m.color)
	highlight := lipgloss.NewStyle().Foreground(color)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 2)

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	var textContent strings.Builder
	header := "󰓃 Marquee"
	if cfg.Text.Source == sourceNowPlaying {
		header = "󰓃 Now Playing"
	}
	textContent.WriteString(highlight.Render(header) + "\n\n")

	switch {
	case m.lastError != nil && errors.Is(m.lastError, errNothingPlaying):
		// Show friendly placeholder for "nothing playing" state
		textContent.WriteString(mutedStyle.Render("Nothing playing") + "\n")
		textContent.WriteString(dimStyle.Render("Start playing music to begin"))
	case m.lastError != nil:
		textContent.WriteString(errorStyle.Render("Error: " + m.lastError.Error()))
	case m.s.anim.Text() == "":
		textContent.WriteString(mutedStyle.Render("Nothing to scroll") + "\n")
		textContent.WriteString(dimStyle.Render("Pass text as an argument or set text.content"))
	default:
		textContent.WriteString(m.s.surface.Render(m.s.anim.Text()))
		if m.status != "" {
			textContent.WriteString("\n" + dimStyle.Render(statusIcon(m.status)+m.status))
		}
	}

	textContent.WriteString("\n\n" + dimStyle.Render(m.runLine()))

	contentStr := borderStyle.Render(textContent.String())

	// Build help text - either full help or hint to press ?
	var helpText string
	if m.showHelp {
		helpText = lipgloss.JoinHorizontal(
			lipgloss.Center,
			"Start: "+highlight.Render("s"),
			"  Stop: "+highlight.Render("x"),
			"  Speed: "+highlight.Render("+/-"),
			"  Side: "+highlight.Render("r"),
			"  Quit: "+highlight.Render("q"),
			"  Hide: "+highlight.Render("?"),
		)
	} else {
		helpText = mutedStyle.Render("Press ? for help")
	}

	fullUI := lipgloss.JoinVertical(lipgloss.Center, contentStr, "\n"+helpText)

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		fullUI,
	)
}

// runLine summarizes the animator state below the marquee
func (m model) runLine() string {
	a := m.s.anim
	next := a.Config()

	times := "∞"
	if next.Bounded() {
		times = fmt.Sprint(next.RepeatCount)
	}

	side := "right"
	if next.StartSide == marquee.StartLeft {
		side = "left"
	}

	line := fmt.Sprintf("%s · loop %d/%s · speed %d · from %s · runs %d",
		strings.ToLower(a.State().String()), a.Loops(), times, next.Speed, side, m.s.runs)
	if iv := m.s.meter.Interval(); iv > 0 && a.State() == marquee.StateRunning {
		line += fmt.Sprintf(" · %dms/tick", iv.Milliseconds())
	}
	return line
}

// Use different icon based on play state (case-insensitive)
func statusIcon(status string) string {
	switch strings.ToLower(status) {
	case "paused":
		return "󰏤 "
	case "stopped":
		return "󰓛 "
	default:
		return "󰐊 "
	}
}
