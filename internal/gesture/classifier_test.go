package gesture

import "testing"

// hand builds a pose with every keypoint at the center except the wrist
// and middle finger base.
func hand(w, m Landmark) []Landmark {
	lm := make([]Landmark, LandmarkCount)
	for i := range lm {
		lm[i] = Landmark{X: 0.5, Y: 0.5}
	}
	lm[wrist] = w
	lm[middleBase] = m
	return lm
}

func TestClassify(t *testing.T) {
	upright := hand(Landmark{X: 0.5, Y: 0.8}, Landmark{X: 0.5, Y: 0.5})

	pointing := hand(Landmark{X: 0.5, Y: 0.8}, Landmark{X: 0.5, Y: 0.5})
	pointing[indexTip].Y = 0.2

	allUp := hand(Landmark{X: 0.5, Y: 0.8}, Landmark{X: 0.5, Y: 0.5})
	allUp[indexTip].Y = 0.2
	allUp[middleTip].Y = 0.2
	allUp[middleBase].Y = 0.5

	tilted := hand(Landmark{X: 0.5, Y: 0.5}, Landmark{X: 0.8, Y: 0.8})
	inverted := hand(Landmark{X: 0.2, Y: 0.4}, Landmark{X: 0.8, Y: 0.55})
	flat := hand(Landmark{X: 0.2, Y: 0.5}, Landmark{X: 0.8, Y: 0.5})

	tests := []struct {
		name     string
		mirrored bool
		lm       []Landmark
		expected Symbol
		ok       bool
	}{
		{"lone index rotates", true, pointing, SymbolRotate, true},
		{"more fingers is not rotate", true, allUp, SymbolRight, true},
		{"negative angle mirrored", true, upright, SymbolRight, true},
		{"negative angle unmirrored", false, upright, SymbolLeft, true},
		{"positive angle mirrored", true, tilted, SymbolLeft, true},
		{"positive angle unmirrored", false, tilted, SymbolRight, true},
		{"wrist above palm", true, inverted, SymbolDown, true},
		{"level hand", true, flat, SymbolNone, false},
		{"too few landmarks", true, pointing[:10], SymbolNone, false},
		{"no landmarks", true, nil, SymbolNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classifier{Mirrored: tt.mirrored}.Classify(tt.lm)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("Classify() = (%q, %v), expected (%q, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}
