package render

import (
	"github.com/vovakirdan/handtris/internal/core"
)

// ScreenSurface draws onto a terminal screen buffer, one unit per
// character, offset by an origin. Translucent fills are skipped because a
// character cell cannot blend; text labels provide the overlay instead.
type ScreenSurface struct {
	screen *core.Screen
	origin core.Point
	w, h   int
	fill   rune
}

// NewScreenSurface creates a w×h surface whose (0,0) is at origin.
func NewScreenSurface(screen *core.Screen, origin core.Point, w, h int) *ScreenSurface {
	return &ScreenSurface{screen: screen, origin: origin, w: w, h: h, fill: '█'}
}

// Size returns the surface dimensions in characters.
func (s *ScreenSurface) Size() (int, int) { return s.w, s.h }

func (s *ScreenSurface) bounds() core.Rect {
	return core.NewRect(0, 0, s.w, s.h)
}

// FillRect paints opaque colors with full-block characters.
func (s *ScreenSurface) FillRect(r core.Rect, c core.Color) {
	if !c.Opaque() {
		return
	}
	r = r.Intersect(s.bounds())
	if r.Empty() {
		return
	}
	r.X += s.origin.X
	r.Y += s.origin.Y
	s.screen.FillRectColor(r, s.fill, c)
}

// StrokeLine draws axis-aligned lines with box-drawing characters and
// anything else as dots.
func (s *ScreenSurface) StrokeLine(x0, y0, x1, y1 int, c core.Color) {
	switch {
	case y0 == y1:
		for x := core.Min(x0, x1); x <= core.Max(x0, x1); x++ {
			s.plot(x, y0, '─', c)
		}
	case x0 == x1:
		for y := core.Min(y0, y1); y <= core.Max(y0, y1); y++ {
			s.plot(x0, y, '│', c)
		}
	default:
		steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
		for i := 0; i <= steps; i++ {
			x := x0 + (x1-x0)*i/steps
			y := y0 + (y1-y0)*i/steps
			s.plot(x, y, '·', c)
		}
	}
}

func (s *ScreenSurface) plot(x, y int, r rune, c core.Color) {
	if !s.bounds().Contains(x, y) {
		return
	}
	s.screen.SetColor(s.origin.X+x, s.origin.Y+y, r, c.Solid())
}

// DrawLabel writes text centered on the given point, clipped to the surface.
func (s *ScreenSurface) DrawLabel(center core.Point, text string, c core.Color) {
	runes := []rune(text)
	x := center.X - len(runes)/2
	for i, r := range runes {
		s.plot(x+i, center.Y, r, c)
	}
}
