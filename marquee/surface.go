package marquee

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the host widget the animator drives. ApplyScrollOffset
// translates the rendered content so that x is the leftmost visible content
// column. DrawText paints directly in content coordinates and is only used
// for the first frame before measurement completes.
type Surface interface {
	ApplyScrollOffset(x, y int)
	DrawText(text string, x int, y float64, c color.Color)
	SetTextColor(c color.Color)
}

// ImageSurface is a raster host backed by an RGBA image.
type ImageSurface struct {
	Dst        *image.RGBA
	Face       font.Face
	PaddingTop int

	color      color.Color
	offX, offY int
}

// NewImageSurface allocates a w x h surface drawing with face.
func NewImageSurface(w, h int, face font.Face) *ImageSurface {
	return &ImageSurface{
		Dst:   image.NewRGBA(image.Rect(0, 0, w, h)),
		Face:  face,
		color: color.White,
	}
}

func (s *ImageSurface) ApplyScrollOffset(x, y int) {
	s.offX, s.offY = x, y
}

// Offset returns the last applied scroll offset.
func (s *ImageSurface) Offset() (x, y int) {
	return s.offX, s.offY
}

func (s *ImageSurface) SetTextColor(c color.Color) {
	s.color = c
}

func (s *ImageSurface) DrawText(text string, x int, y float64, c color.Color) {
	s.drawAt(text, x-s.offX, y-float64(s.offY), c)
}

// Render clears the image and draws text the way the host lays out a single
// line: baseline one ascent below the top padding, shifted by the scroll
// offset.
func (s *ImageSurface) Render(text string) {
	draw.Draw(s.Dst, s.Dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
	ascent := fixedToFloat(s.Face.Metrics().Ascent)
	s.drawAt(text, -s.offX, float64(s.PaddingTop)+ascent-float64(s.offY), s.color)
}

func (s *ImageSurface) drawAt(text string, x int, y float64, c color.Color) {
	d := font.Drawer{
		Dst:  s.Dst,
		Src:  image.NewUniform(c),
		Face: s.Face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}
