package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/vovakirdan/handtris/internal/core"
)

// ImageSurface rasterizes onto an RGBA image with alpha blending.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a transparent w×h pixel surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the image dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// FillRect composites c over r. Unparsable colors are ignored.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) {
	src, ok := toRGBA(c)
	if !ok || r.Empty() {
		return
	}
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	draw.Draw(s.img, rect, image.NewUniform(src), image.Point{}, draw.Over)
}

// StrokeLine draws a one-pixel line.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1 int, c core.Color) {
	switch {
	case y0 == y1:
		s.FillRect(core.NewRect(core.Min(x0, x1), y0, core.Abs(x1-x0)+1, 1), c)
	case x0 == x1:
		s.FillRect(core.NewRect(x0, core.Min(y0, y1), 1, core.Abs(y1-y0)+1), c)
	default:
		steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
		for i := 0; i <= steps; i++ {
			s.FillRect(core.NewRect(x0+(x1-x0)*i/steps, y0+(y1-y0)*i/steps, 1, 1), c)
		}
	}
}

// WritePNG encodes the image.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// toRGBA converts a hex color; draw handles premultiplication.
func toRGBA(c core.Color) (color.Color, bool) {
	r, g, b, a, err := c.RGBA()
	if err != nil {
		return nil, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
