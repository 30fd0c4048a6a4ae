package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("marquee", pflag.ExitOnError)
	flags.StringP("text", "t", "", "Text to scroll (remaining arguments are used when unset)")
	flags.StringP("color", "c", "", "Set the desired color (ANSI code or hex)")
	flags.IntP("width", "w", 0, "Visible marquee width in cells")
	flags.Int("speed", 0, "Cells advanced per tick")
	flags.Int("times", 0, "Traversals before the run completes (0 scrolls forever)")
	flags.Int("delay", 0, "Delay before the first tick in milliseconds")
	flags.Int("start", 0, "Start location: 0 for left, 1 for right")
	flags.Int("tick", 0, "Tick period in milliseconds")
	flags.String("source", "", "Text source: static or now_playing")
	flags.String("log", "", "Write logs to this file (rotated)")
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/marquee/config.yaml)")
	flags.Bool("exit-on-finish", false, "Quit when the scroll run completes")
	return flags
}

func main() {
	flags := newFlagSet()
	_ = flags.Parse(os.Args[1:])
	if args := flags.Args(); len(args) > 0 && !flags.Changed("text") {
		_ = flags.Set("text", strings.Join(args, " "))
	}
	configFile, _ := flags.GetString("config")
	exitOnFinish, _ := flags.GetBool("exit-on-finish")

	initConfig(flags, configFile)
	cfg := config.Get()

	logger, logCloser := newLogger(cfg.Log.File, cfg.Log.Level)
	logger.Info("starting",
		slog.String("source", cfg.Text.Source),
		slog.Int("width", cfg.UI.Width),
		slog.Int("speed", cfg.Scroll.Speed),
		slog.Int("times", cfg.Scroll.Times))

	initialModel := model{
		s:               newSession(cfg, logger, exitOnFinish),
		color:           cfg.UI.Color,
		mediaController: NewMediaController(),
	}

	_, err := tea.NewProgram(initialModel, tea.WithAltScreen()).Run()
	logCloser.Close()
	if err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
