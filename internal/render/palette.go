package render

import (
	"fmt"

	"github.com/vovakirdan/handtris/internal/core"
)

// Palette maps ColorIDs and scene elements to colors.
type Palette struct {
	Pieces     [7]core.Color // Indexed by ColorID-1: I O T S Z J L
	Background core.Color
	Grid       core.Color
	Overlay    core.Color
	Highlight  core.Color
	Text       core.Color
}

// DefaultPalette returns the classic piece colors on a dark board.
func DefaultPalette() Palette {
	return Palette{
		Pieces: [7]core.Color{
			"#00f0f0", // I
			"#f0f000", // O
			"#a000f0", // T
			"#00f000", // S
			"#f00000", // Z
			"#0000f0", // J
			"#f0a000", // L
		},
		Background: "#222222",
		Grid:       "#444444",
		Overlay:    "#000000b3",
		Highlight:  "#ffffff4d",
		Text:       "#ffffff",
	}
}

// Piece returns the color for a ColorID. Unknown IDs use the text color.
func (p Palette) Piece(colorID int) core.Color {
	if colorID < 1 || colorID > len(p.Pieces) {
		return p.Text
	}
	return p.Pieces[colorID-1]
}

// Validate checks that every color parses.
func (p Palette) Validate() error {
	named := map[string]core.Color{
		"background": p.Background,
		"grid":       p.Grid,
		"overlay":    p.Overlay,
		"highlight":  p.Highlight,
		"text":       p.Text,
	}
	for i, c := range p.Pieces {
		named[fmt.Sprintf("piece %d", i+1)] = c
	}
	for name, c := range named {
		if _, _, _, _, err := c.RGBA(); err != nil {
			return fmt.Errorf("render: %s: %w", name, err)
		}
	}
	return nil
}
