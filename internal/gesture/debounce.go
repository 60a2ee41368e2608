package gesture

import "time"

// DefaultSustain is how long a gesture must be held before it fires.
const DefaultSustain = 300 * time.Millisecond

// Debouncer fires a symbol once it has been observed continuously for
// longer than the sustain threshold. Holding the gesture fires it again
// after each further threshold; any change restarts the timer.
// Not safe for concurrent use.
type Debouncer struct {
	sustain time.Duration
	current Symbol
	since   time.Time
}

// NewDebouncer creates a debouncer. With a zero sustain the second
// observation of a gesture fires as soon as time has moved.
func NewDebouncer(sustain time.Duration) *Debouncer {
	return &Debouncer{sustain: sustain}
}

// Observe records the classification of one frame taken at now. It returns
// the symbol to fire, if any.
func (d *Debouncer) Observe(sym Symbol, now time.Time) (Symbol, bool) {
	if sym == SymbolNone {
		d.Reset()
		return SymbolNone, false
	}
	if sym != d.current {
		d.current = sym
		d.since = now
		return SymbolNone, false
	}
	if now.Sub(d.since) > d.sustain {
		d.since = now
		return sym, true
	}
	return SymbolNone, false
}

// Reset forgets the held gesture.
func (d *Debouncer) Reset() {
	d.current = SymbolNone
	d.since = time.Time{}
}
