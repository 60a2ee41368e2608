package core

import (
	"fmt"
	"strings"
)

// Color is a cell color expressed as a hex string ("#rrggbb" or "#rrggbbaa").
// The zero value means the terminal's default foreground.
type Color string

// ColorDefault leaves the cell unstyled.
const ColorDefault Color = ""

// IsDefault reports whether the color carries no explicit value.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// RGBA parses the color into 8-bit channels.
// A missing alpha channel is treated as fully opaque.
func (c Color) RGBA() (r, g, b, a uint8, err error) {
	s := strings.TrimPrefix(string(c), "#")
	switch len(s) {
	case 3:
		// Short form: #abc -> #aabbcc
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
		fallthrough
	case 6:
		s += "ff"
	case 8:
	default:
		return 0, 0, 0, 0, fmt.Errorf("invalid color %q", string(c))
	}

	var v [4]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[i*2])
		lo, ok2 := hexNibble(s[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, 0, fmt.Errorf("invalid color %q", string(c))
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], v[3], nil
}

// Opaque reports whether the color has no translucency.
// Unparsable colors are treated as opaque.
func (c Color) Opaque() bool {
	_, _, _, a, err := c.RGBA()
	return err != nil || a == 0xff
}

// Solid returns the color with its alpha channel dropped.
func (c Color) Solid() Color {
	r, g, b, _, err := c.RGBA()
	if err != nil {
		return c
	}
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func hexNibble(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
