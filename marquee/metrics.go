package marquee

// FontMetrics are the vertical extents of a font, both measured as positive
// distances from the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// Height is the full line box of the font.
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// Font is the read-only paint context queried during measurement.
type Font interface {
	MeasureTextWidth(text string) float64
	Metrics() FontMetrics
}

// TextMetrics is the sizing computed once per (text, font, size).
type TextMetrics struct {
	TextWidth     int     // rendered width of the full string
	ScrollBaseY   int     // vertical scroll anchor passed with every offset
	TextBaselineY float64 // baseline that centers the glyph box vertically
}

// Measure computes the sizing of text rendered with f inside a content box of
// the given height.
func Measure(f Font, text string, height, paddingTop int) TextMetrics {
	fm := f.Metrics()
	fontHeight := fm.Height()
	h := float64(height)

	return TextMetrics{
		TextWidth:     int(f.MeasureTextWidth(text)),
		ScrollBaseY:   -int(h-fontHeight)/2 + paddingTop,
		TextBaselineY: h - (h-fontHeight)/2 - fm.Descent,
	}
}
