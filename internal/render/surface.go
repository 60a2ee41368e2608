// Package render draws a game scene onto an abstract 2D surface. The same
// renderer feeds the terminal screen buffer and PNG screenshots.
package render

import "github.com/vovakirdan/handtris/internal/core"

// Surface is the minimal drawing target.
type Surface interface {
	// Size returns the drawable area in surface units.
	Size() (w, h int)
	// FillRect paints r. Translucent colors blend where the surface can.
	FillRect(r core.Rect, c core.Color)
	// StrokeLine draws a one-unit line between two points, inclusive.
	StrokeLine(x0, y0, x1, y1 int, c core.Color)
}

// TextSurface is implemented by surfaces that can draw labels.
type TextSurface interface {
	Surface
	// DrawLabel draws text centered on the given point.
	DrawLabel(center core.Point, text string, c core.Color)
}
