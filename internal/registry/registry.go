// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/handtris/internal/core"
)

// Game is the contract between a game and the platform loop.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform owns the frame clock, input mapping and display.
type Game interface {
	// ID returns a unique identifier (e.g., "tetris", "tetris_bag").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game seeded from cfg. Called once when a session
	// starts; ActionRestart begins a new run without reseeding.
	Reset(cfg core.RuntimeConfig)

	// HandleAction applies one discrete input immediately.
	HandleAction(a core.Action)

	// Advance feeds the frame clock. Games derive elapsed time themselves.
	Advance(now time.Time)

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary (score, lines, level, flags).
	State() core.GameState

	// SessionID identifies the current run for score records.
	SessionID() string
}

// Screenshotter is implemented by games that can export a raster image.
type Screenshotter interface {
	Screenshot(w io.Writer) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
