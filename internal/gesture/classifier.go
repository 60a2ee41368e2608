package gesture

import "math"

// Landmark is one normalized hand keypoint; x and y are in [0,1] with y
// growing downward.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LandmarkCount is the number of keypoints in a hand.
const LandmarkCount = 21

// Keypoint indices used by the classifier.
const (
	wrist      = 0
	indexBase  = 5
	indexTip   = 8
	middleBase = 9
	middleTip  = 12
	ringBase   = 13
	ringTip    = 16
	pinkyBase  = 17
	pinkyTip   = 20
)

const (
	tiltDegrees  = 30.0 // hand tilt that reads as left/right
	extendMargin = 0.10 // index must clear its base by this for rotate
	fingerMargin = 0.05 // other fingers count as extended past this
	downMargin   = 0.10 // wrist above the palm by this reads as down
)

// Classifier maps one hand pose to a symbol.
type Classifier struct {
	// Mirrored swaps left and right for a selfie-view camera.
	Mirrored bool
}

// Classify returns the gesture for a hand, or false for no gesture.
// Rules are checked in order: a lone raised index finger, tilt beyond
// ±30°, then an inverted hand.
func (c Classifier) Classify(lm []Landmark) (Symbol, bool) {
	if len(lm) < LandmarkCount {
		return SymbolNone, false
	}
	w, m := lm[wrist], lm[middleBase]
	angle := math.Atan2(m.Y-w.Y, m.X-w.X) * 180 / math.Pi

	indexUp := lm[indexTip].Y < lm[indexBase].Y-extendMargin
	switch {
	case indexUp && onlyIndexExtended(lm):
		return SymbolRotate, true
	case angle < -tiltDegrees:
		return c.side(SymbolRight), true
	case angle > tiltDegrees:
		return c.side(SymbolLeft), true
	case w.Y < m.Y-downMargin:
		return SymbolDown, true
	}
	return SymbolNone, false
}

func (c Classifier) side(mirrored Symbol) Symbol {
	if c.Mirrored {
		return mirrored
	}
	if mirrored == SymbolLeft {
		return SymbolRight
	}
	return SymbolLeft
}

// onlyIndexExtended reports an index finger raised with the middle, ring
// and pinky folded. The thumb is not considered.
func onlyIndexExtended(lm []Landmark) bool {
	up := func(tip, base int) bool {
		return lm[tip].Y < lm[base].Y-fingerMargin
	}
	return up(indexTip, indexBase) &&
		!up(middleTip, middleBase) &&
		!up(ringTip, ringBase) &&
		!up(pinkyTip, pinkyBase)
}
