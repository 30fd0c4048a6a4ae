package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// renderWindow returns the width cells of text visible when the leftmost
// visible cell is text cell offset. Cells outside the text are blank and a
// wide rune cut by either edge is replaced by a space.
func renderWindow(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	// One entry per cell; a wide rune is followed by an empty continuation cell
	var cells []string
	for _, r := range stripansi.Strip(text) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		cells = append(cells, string(r))
		if w == 2 {
			cells = append(cells, "")
		}
	}

	var b strings.Builder
	for col := 0; col < width; col++ {
		i := col + offset
		if i < 0 || i >= len(cells) {
			b.WriteByte(' ')
			continue
		}
		cell := cells[i]
		switch {
		case cell == "" && col == 0:
			// Right half of a wide rune scrolled past the left edge
			b.WriteByte(' ')
		case cell == "":
			// Already covered by the wide rune written before it
		case i+1 < len(cells) && cells[i+1] == "" && col == width-1:
			// Wide rune that would overflow the right edge
			b.WriteByte(' ')
		default:
			b.WriteString(cell)
		}
	}
	return b.String()
}

// cellSurface is the terminal host of the animator: a single row of width
// cells translated by the applied scroll offset.
type cellSurface struct {
	width   int
	offsetX int
	style   lipgloss.Style

	rawDraws int    // direct draws before measurement
	lastRaw  string // window produced by the last direct draw
}

func newCellSurface(width int) *cellSurface {
	return &cellSurface{width: width, style: lipgloss.NewStyle()}
}

func (s *cellSurface) ApplyScrollOffset(x, _ int) {
	s.offsetX = x
}

// DrawText paints text starting at content column x, as seen through the
// current scroll offset
func (s *cellSurface) DrawText(text string, x int, _ float64, c color.Color) {
	s.rawDraws++
	s.lastRaw = lipgloss.NewStyle().
		Foreground(toTerminalColor(c)).
		Render(renderWindow(text, s.width, s.offsetX-x))
}

func (s *cellSurface) SetTextColor(c color.Color) {
	s.style = s.style.Foreground(toTerminalColor(c))
}

// Render draws the current frame of text
func (s *cellSurface) Render(text string) string {
	return s.style.Render(renderWindow(text, s.width, s.offsetX))
}

// termColor is a config color: an ANSI code 0-255 or a hex value
type termColor string

// RGBA resolves the color against the xterm 256-color palette
func (c termColor) RGBA() (r, g, b, a uint32) {
	s := string(c)
	if strings.HasPrefix(s, "#") {
		if cf, err := colorful.Hex(s); err == nil {
			return cf.RGBA()
		}
		return color.White.RGBA()
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return color.White.RGBA()
	}
	return xtermColor(n).RGBA()
}

var ansiBase = [16]color.RGBA{
	{0, 0, 0, 255}, {128, 0, 0, 255}, {0, 128, 0, 255}, {128, 128, 0, 255},
	{0, 0, 128, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {192, 192, 192, 255},
	{128, 128, 128, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {255, 255, 0, 255},
	{0, 0, 255, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
}

func xtermColor(n int) color.RGBA {
	switch {
	case n < 16:
		return ansiBase[n]
	case n < 232:
		// 6x6x6 color cube
		level := func(v int) uint8 {
			if v == 0 {
				return 0
			}
			return uint8(55 + v*40)
		}
		n -= 16
		return color.RGBA{level(n / 36), level(n / 6 % 6), level(n % 6), 255}
	default:
		v := uint8(8 + (n-232)*10)
		return color.RGBA{v, v, v, 255}
	}
}

// toTerminalColor keeps config colors as given so the terminal's own palette
// is used, and converts anything else to hex
func toTerminalColor(c color.Color) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	if tc, ok := c.(termColor); ok {
		return lipgloss.Color(string(tc))
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(cf.Hex())
}

// formatNowPlaying joins track metadata into a single marquee line
func formatNowPlaying(title, artist, album string) string {
	var parts []string
	for _, p := range []string{title, artist, album} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  •  ")
}
