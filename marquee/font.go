package marquee

import (
	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceFont adapts a golang.org/x/image font face for pixel hosts.
type FaceFont struct {
	Face font.Face
}

func (f FaceFont) MeasureTextWidth(text string) float64 {
	return fixedToFloat(font.MeasureString(f.Face, text))
}

func (f FaceFont) Metrics() FontMetrics {
	m := f.Face.Metrics()
	return FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// CellFont measures text in terminal cells. ANSI escape sequences take no
// space, wide runes take two cells and a line is exactly one row tall.
type CellFont struct{}

func (CellFont) MeasureTextWidth(text string) float64 {
	return float64(runewidth.StringWidth(stripansi.Strip(text)))
}

func (CellFont) Metrics() FontMetrics {
	return FontMetrics{Ascent: 1}
}
