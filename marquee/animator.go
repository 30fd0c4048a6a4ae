// Package marquee scrolls a single line of text horizontally across a host
// widget, wrapping it a configured number of times.
//
// The Animator is a state machine driven by an injected Timer. Hosts call
// Paint on every paint pass; the first pass after the text, font or size
// changed measures the text and positions it. Start schedules ticks, each
// tick advances the offset by the configured speed and hands it to the
// Surface. All methods must be called from the host's single UI context and
// the Timer must fire actions on that same context.
package marquee

import (
	"errors"
	"image/color"
	"log/slog"
	"time"
)

// ErrNilCallback is returned by Start when no completion callback is given.
var ErrNilCallback = errors.New("marquee: start requires a completion callback")

// State is the lifecycle position of an Animator.
type State int

const (
	StateIdle    State = iota // no run, no pending tick
	StatePending              // started, waiting for the first tick
	StateRunning              // ticking
)

// Option configures an Animator at construction.
type Option func(*Animator)

// WithConfig replaces the default scroll configuration.
func WithConfig(cfg ScrollConfig) Option {
	return func(a *Animator) { a.cfg = cfg }
}

// WithTickPeriod sets the delay between ticks of a running animation.
func WithTickPeriod(d time.Duration) Option {
	return func(a *Animator) { a.tickPeriod = d }
}

// WithLogger routes lifecycle debug logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(a *Animator) { a.log = l }
}

// Animator owns the scroll state of one widget.
type Animator struct {
	cfg        ScrollConfig // used by the next run
	run        ScrollConfig // snapshot taken by Start
	tickPeriod time.Duration

	timer   Timer
	surface Surface
	font    Font
	log     *slog.Logger

	text                      string
	width, height, paddingTop int
	color                     color.Color

	state         State
	pending       Handle
	onFinish      func()
	offsetX       int
	loopCount     int
	stopRequested bool
	measured      bool
	metrics       TextMetrics
}

// New returns an idle animator drawing on surface and measuring with f.
func New(timer Timer, surface Surface, f Font, opts ...Option) *Animator {
	a := &Animator{
		cfg:        DefaultScrollConfig(),
		tickPeriod: DefaultTickPeriod,
		timer:      timer,
		surface:    surface,
		font:       f,
		log:        slog.New(slog.DiscardHandler),
		color:      color.White,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.run = a.cfg
	return a
}

// SetText changes the scrolled text. A different text forces a new
// measurement on the next Paint.
func (a *Animator) SetText(text string) {
	if text == a.text {
		return
	}
	a.text = text
	a.invalidate()
}

// Text returns the scrolled text.
func (a *Animator) Text() string { return a.text }

// SetFont replaces the paint context and forces a new measurement.
func (a *Animator) SetFont(f Font) {
	a.font = f
	a.invalidate()
}

// Resize sets the visible bounds of the widget.
func (a *Animator) Resize(width, height, paddingTop int) {
	if width == a.width && height == a.height && paddingTop == a.paddingTop {
		return
	}
	a.width, a.height, a.paddingTop = width, height, paddingTop
	a.invalidate()
}

// SetTextColor forwards c to the host and keeps it for the unmeasured frame.
func (a *Animator) SetTextColor(c color.Color) {
	a.surface.SetTextColor(c)
	a.color = c
}

func (a *Animator) SetFirstScrollDelay(d time.Duration) { a.cfg.FirstDelay = d }
func (a *Animator) SetSpeed(speed int)                   { a.cfg.Speed = speed }
func (a *Animator) SetRepeatCount(n int)                 { a.cfg.RepeatCount = n }
func (a *Animator) SetStartSide(side StartSide)          { a.cfg.StartSide = side }

// SetTickPeriod changes the delay used when scheduling the next tick.
func (a *Animator) SetTickPeriod(d time.Duration) { a.tickPeriod = d }

// SetConfig replaces the configuration used by the next run.
func (a *Animator) SetConfig(cfg ScrollConfig) { a.cfg = cfg }

// Config returns the configuration the next run will use.
func (a *Animator) Config() ScrollConfig { return a.cfg }

// Paint is the host's paint hook. The first call after an invalidation
// measures the text, draws it once off-screen and positions the scroll at the
// start offset, returning true. Otherwise it returns false and the host
// draws the frame itself.
func (a *Animator) Paint() bool {
	if a.measured {
		return false
	}
	a.metrics = Measure(a.font, a.text, a.height, a.paddingTop)
	a.surface.DrawText(a.text, -a.width, a.metrics.TextBaselineY, a.color)

	side := a.cfg.StartSide
	if a.state != StateIdle {
		side = a.run.StartSide
	}
	a.offsetX = a.startOffset(side)
	a.apply(a.offsetX)
	a.measured = true
	return true
}

// Start begins a new run, superseding any run in progress. onFinish is
// called exactly once, from a tick, when the run is stopped or has used up
// its repeat count.
func (a *Animator) Start(onFinish func()) error {
	if onFinish == nil {
		return ErrNilCallback
	}
	a.cancelPending()

	a.run = a.cfg
	a.onFinish = onFinish
	a.stopRequested = false
	a.loopCount = 0
	if a.measured {
		a.offsetX = a.startOffset(a.run.StartSide)
		a.apply(a.offsetX)
	}

	a.state = StatePending
	a.pending = a.timer.ScheduleOnce(a.run.FirstDelay, a.Tick)
	a.log.Debug("marquee start",
		slog.Duration("delay", a.run.FirstDelay),
		slog.Int("speed", a.run.Speed),
		slog.Int("times", a.run.RepeatCount),
		slog.String("side", a.run.StartSide.String()))
	return nil
}

// Stop asks the running animation to end. The completion callback fires on
// the next tick, never from Stop itself.
func (a *Animator) Stop() {
	if !a.stopRequested {
		a.log.Debug("marquee stop requested", slog.String("state", a.state.String()))
	}
	a.stopRequested = true
}

// Destroy cancels any pending tick and forgets the callback without
// notifying it. Used when the host widget goes away.
func (a *Animator) Destroy() {
	a.cancelPending()
	a.onFinish = nil
	a.stopRequested = false
	a.state = StateIdle
}

// Tick advances the animation by one step. It is normally run by the Timer;
// calling it while idle does nothing.
func (a *Animator) Tick() {
	if a.state == StateIdle {
		return
	}
	a.cancelPending()
	a.state = StateRunning

	if !a.measured || a.metrics.TextWidth <= 0 {
		if a.stopRequested {
			a.finish("stopped")
			return
		}
		a.schedule()
		return
	}

	a.offsetX += a.run.Speed
	a.apply(a.offsetX)

	if a.stopRequested {
		a.finish("stopped")
		return
	}

	if a.offsetX >= a.metrics.TextWidth {
		a.loopCount++
		if a.run.Bounded() && a.loopCount >= a.run.RepeatCount {
			a.offsetX = 0
			a.apply(a.offsetX)
			a.finish("completed")
			return
		}
		a.offsetX = -a.width
		a.apply(a.offsetX)
		a.log.Debug("marquee wrap", slog.Int("loop", a.loopCount))
	}

	a.schedule()
}

// Offset returns the current horizontal scroll position.
func (a *Animator) Offset() int { return a.offsetX }

// Loops returns the number of completed traversals in the current run.
func (a *Animator) Loops() int { return a.loopCount }

// State returns the lifecycle state.
func (a *Animator) State() State { return a.state }

// Measured reports whether the current text and size have been measured.
func (a *Animator) Measured() bool { return a.measured }

// Metrics returns the cached measurement; zero until measured.
func (a *Animator) Metrics() TextMetrics { return a.metrics }

// StopRequested reports whether Stop was called during the current run.
func (a *Animator) StopRequested() bool { return a.stopRequested }

func (a *Animator) startOffset(side StartSide) int {
	if side == StartRight {
		return -a.width
	}
	return 0
}

func (a *Animator) apply(x int) {
	a.surface.ApplyScrollOffset(x, a.metrics.ScrollBaseY)
}

func (a *Animator) invalidate() {
	a.measured = false
	a.metrics = TextMetrics{}
}

func (a *Animator) schedule() {
	a.pending = a.timer.ScheduleOnce(a.tickPeriod, a.Tick)
}

func (a *Animator) cancelPending() {
	if a.pending != 0 {
		a.timer.Cancel(a.pending)
		a.pending = 0
	}
}

func (a *Animator) finish(reason string) {
	cb := a.onFinish
	a.onFinish = nil
	a.state = StateIdle
	a.log.Debug("marquee finish",
		slog.String("reason", reason),
		slog.Int("loops", a.loopCount),
		slog.Int("offset", a.offsetX))
	cb()
}
