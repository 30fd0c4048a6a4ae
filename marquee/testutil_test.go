package marquee

import (
	"image/color"
	"testing"
)

// fixedFont gives every rune the same advance.
type fixedFont struct {
	advance         float64
	ascent, descent float64
}

func (f fixedFont) MeasureTextWidth(text string) float64 {
	return f.advance * float64(len([]rune(text)))
}

func (f fixedFont) Metrics() FontMetrics {
	return FontMetrics{Ascent: f.ascent, Descent: f.descent}
}

type offsetCall struct{ x, y int }

type drawCall struct {
	text string
	x    int
	y    float64
	c    color.Color
}

// recordingSurface remembers every call the animator makes.
type recordingSurface struct {
	offsets []offsetCall
	draws   []drawCall
	color   color.Color
}

func (s *recordingSurface) ApplyScrollOffset(x, y int) {
	s.offsets = append(s.offsets, offsetCall{x, y})
}

func (s *recordingSurface) DrawText(text string, x int, y float64, c color.Color) {
	s.draws = append(s.draws, drawCall{text, x, y, c})
}

func (s *recordingSurface) SetTextColor(c color.Color) {
	s.color = c
}

func (s *recordingSurface) last() offsetCall {
	if len(s.offsets) == 0 {
		return offsetCall{}
	}
	return s.offsets[len(s.offsets)-1]
}

// newTestAnimator builds a measured animator whose text is textWidth/10 runes
// wide at 10px per rune inside a viewWidth x 20 widget.
func newTestAnimator(t *testing.T, textWidth, viewWidth int, cfg ScrollConfig) (*Animator, *ManualTimer, *recordingSurface) {
	t.Helper()
	timer := NewManualTimer()
	surface := &recordingSurface{}
	a := New(timer, surface, fixedFont{advance: 10, ascent: 8, descent: 2}, WithConfig(cfg))
	a.SetText(repeatRune('x', textWidth/10))
	a.Resize(viewWidth, 20, 0)
	if !a.Paint() {
		t.Fatal("first Paint did not measure")
	}
	if got := a.Metrics().TextWidth; got != textWidth {
		t.Fatalf("TextWidth = %d, want %d", got, textWidth)
	}
	return a, timer, surface
}

func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

// counter is a completion callback that counts its invocations.
type counter struct{ n int }

func (c *counter) finish() { c.n++ }

// stepN runs up to n pending ticks and returns how many ran.
func stepN(timer *ManualTimer, n int) int {
	ran := 0
	for ran < n && timer.Step() {
		ran++
	}
	return ran
}

// assertEqual fails the test when got differs from want.
func assertEqual[T comparable](t *testing.T, got, want T, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}
