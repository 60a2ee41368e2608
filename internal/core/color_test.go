package core

import "testing"

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		color      Color
		r, g, b, a uint8
		wantErr    bool
	}{
		{"#00f0f0", 0x00, 0xf0, 0xf0, 0xff, false},
		{"#000000b3", 0, 0, 0, 0xb3, false},
		{"#222", 0x22, 0x22, 0x22, 0xff, false},
		{"f0a000", 0xf0, 0xa0, 0x00, 0xff, false},
		{"#GG0000", 0, 0, 0, 0, true},
		{"#12345", 0, 0, 0, 0, true},
		{"", 0, 0, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.color), func(t *testing.T) {
			r, g, b, a, err := tc.color.RGBA()
			if tc.wantErr {
				if err == nil {
					t.Errorf("RGBA(%q) expected error", tc.color)
				}
				return
			}
			if err != nil {
				t.Fatalf("RGBA(%q) unexpected error: %v", tc.color, err)
			}
			if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
				t.Errorf("RGBA(%q) = (%d,%d,%d,%d), expected (%d,%d,%d,%d)",
					tc.color, r, g, b, a, tc.r, tc.g, tc.b, tc.a)
			}
		})
	}
}

func TestColorOpaque(t *testing.T) {
	if !Color("#ff0000").Opaque() {
		t.Error("#ff0000 should be opaque")
	}
	if Color("#ffffff4d").Opaque() {
		t.Error("#ffffff4d should be translucent")
	}
	if got := Color("#ffffff4d").Solid(); got != "#ffffff" {
		t.Errorf("Solid() = %q, expected #ffffff", got)
	}
}
