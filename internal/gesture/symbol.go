// Package gesture turns hand-detector output into game input. It accepts
// discrete gesture symbols or raw hand landmarks over a WebSocket,
// classifies and debounces them, and fires handlers with symbols.
package gesture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/handtris/internal/core"
)

// Symbol is one discrete gesture.
type Symbol string

const (
	SymbolNone   Symbol = ""
	SymbolLeft   Symbol = "left"
	SymbolRight  Symbol = "right"
	SymbolDown   Symbol = "down"
	SymbolRotate Symbol = "rotate"
)

// ErrUnknownSymbol is returned by Parse for anything outside the vocabulary.
var ErrUnknownSymbol = errors.New("gesture: unknown symbol")

// Parse normalizes and validates a symbol name.
func Parse(s string) (Symbol, error) {
	switch sym := Symbol(strings.ToLower(strings.TrimSpace(s))); sym {
	case SymbolLeft, SymbolRight, SymbolDown, SymbolRotate:
		return sym, nil
	}
	return SymbolNone, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
}

// Action maps the symbol to the game action it triggers.
func (s Symbol) Action() core.Action {
	switch s {
	case SymbolLeft:
		return core.ActionLeft
	case SymbolRight:
		return core.ActionRight
	case SymbolDown:
		return core.ActionSoftDrop
	case SymbolRotate:
		return core.ActionRotate
	}
	return core.ActionNone
}
