package main

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbletea"

	"marqueetext/marquee"
)

// session holds the marquee state shared by every copy of the model, since
// Bubble Tea copies the model on each Update.
type session struct {
	anim    *marquee.Animator
	timer   *teaTimer
	surface *cellSurface
	meter   *tickMeter
	log     *slog.Logger

	runs         int  // completed or stopped runs
	fetching     bool // now-playing poll loop is scheduled
	exitOnFinish bool
	quit         bool
}

func newSession(cfg Config, log *slog.Logger, exitOnFinish bool) *session {
	s := &session{
		timer:        newTeaTimer(),
		surface:      newCellSurface(cfg.UI.Width),
		meter:        newTickMeter(),
		log:          log,
		exitOnFinish: exitOnFinish,
	}
	s.anim = marquee.New(s.timer, s.surface, marquee.CellFont{},
		marquee.WithConfig(cfg.ScrollConfig()),
		marquee.WithTickPeriod(cfg.TickPeriod()),
		marquee.WithLogger(log),
	)
	s.anim.SetTextColor(termColor(cfg.UI.Color))
	s.anim.Resize(cfg.UI.Width, 1, 0)
	if cfg.Text.Source == sourceStatic {
		s.anim.SetText(cfg.Text.Content)
	}
	return s
}

// start begins a new scroll run, replacing the current one
func (s *session) start() {
	s.meter.Reset()
	if err := s.anim.Start(s.finished); err != nil {
		s.log.Error("start marquee", slog.Any("err", err))
	}
}

// finished is the completion callback of every run
func (s *session) finished() {
	s.runs++
	s.log.Info("marquee run finished",
		slog.Int("runs", s.runs),
		slog.Int("loops", s.anim.Loops()),
		slog.Bool("stopped", s.anim.StopRequested()))
	if s.exitOnFinish {
		s.quit = true
	}
}

func (s *session) resize(width int) {
	s.surface.width = width
	s.anim.Resize(width, 1, 0)
}

// model is the Bubble Tea model for the TUI application
type model struct {
	s               *session
	color           string
	width           int
	height          int
	lastError       error
	status          string // player status in now-playing mode
	mediaController MediaController

	// UI state
	showHelp bool // Whether to show help text
}

// Data fetch tick - fires every refresh_ms to poll the media player
type fetchMsg time.Time

// Result of fetching song data from media controller
type songDataMsg struct {
	title  string
	artist string
	album  string
	status string
	err    error
}

// Schedule next data fetch
func fetchCmd() tea.Cmd {
	cfg := config.Get()
	return tea.Tick(time.Duration(cfg.Text.RefreshMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return fetchMsg(t)
	})
}

// Fetch song data in background (doesn't block UI)
func (m model) fetchSongData() tea.Cmd {
	return func() tea.Msg {
		title, artist, album, status, err := m.mediaController.GetMetadata()
		if err != nil {
			return songDataMsg{err: err}
		}
		return songDataMsg{
			title:  title,
			artist: artist,
			album:  album,
			status: status,
		}
	}
}

func (m model) nowPlaying() bool {
	return config.Get().Text.Source == sourceNowPlaying
}

func (m model) Init() tea.Cmd {
	m.s.anim.Paint()
	m.s.start()

	cmds := []tea.Cmd{m.s.timer.Drain(), watchConfigCmd()}
	if m.nowPlaying() {
		m.s.fetching = true
		cmds = append(cmds, m.fetchSongData(), fetchCmd())
	}
	return tea.Batch(cmds...)
}

// applyConfig takes a reloaded config into use. Scroll settings apply from
// the next run on; text, color and width apply immediately.
func (m *model) applyConfig(cfg Config) {
	m.color = cfg.UI.Color
	m.s.anim.SetTextColor(termColor(cfg.UI.Color))
	m.s.anim.SetConfig(cfg.ScrollConfig())
	m.s.anim.SetTickPeriod(cfg.TickPeriod())
	m.s.resize(cfg.UI.Width)
	if cfg.Text.Source == sourceStatic {
		m.lastError = nil
		m.s.anim.SetText(cfg.Text.Content)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.s.anim.Destroy()
			return m, tea.Quit
		case "s":
			// Start or restart the run
			m.s.start()
		case "x":
			m.s.anim.Stop()
		case "+", "=":
			m.s.anim.SetSpeed(m.s.anim.Config().Speed + 1)
		case "-":
			if speed := m.s.anim.Config().Speed; speed > 1 {
				m.s.anim.SetSpeed(speed - 1)
			}
		case "r":
			side := marquee.StartRight
			if m.s.anim.Config().StartSide == marquee.StartRight {
				side = marquee.StartLeft
			}
			m.s.anim.SetStartSide(side)
		case "?":
			// Toggle help text
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case timerFiredMsg:
		if m.s.timer.Fire(msg) {
			m.s.meter.Observe(msg.at)
		}

	case configReloadMsg:
		// Config file changed, take it into use and keep watching
		m.applyConfig(config.Get())
		cmd = watchConfigCmd()
		if m.nowPlaying() && !m.s.fetching {
			m.s.fetching = true
			cmd = tea.Batch(cmd, m.fetchSongData(), fetchCmd())
		}

	case fetchMsg:
		// Data fetch tick - get fresh data and schedule next fetch
		if m.nowPlaying() {
			cmd = tea.Batch(fetchCmd(), m.fetchSongData())
		} else {
			m.s.fetching = false
		}

	case songDataMsg:
		if msg.err != nil {
			m.lastError = msg.err
			m.s.anim.SetText("")
		} else {
			m.lastError = nil
			m.status = msg.status
			m.s.anim.SetText(formatNowPlaying(msg.title, msg.artist, msg.album))
		}
	}

	// Measure on the first frame after text or size changed
	m.s.anim.Paint()

	if m.s.quit {
		m.s.anim.Destroy()
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.s.timer.Drain())
}
