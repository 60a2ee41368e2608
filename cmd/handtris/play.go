package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/handtris/internal/core"
	"github.com/vovakirdan/handtris/internal/gesture"
	"github.com/vovakirdan/handtris/internal/platform/tui"
	"github.com/vovakirdan/handtris/internal/registry"
	"github.com/vovakirdan/handtris/internal/storage"
)

var (
	flagGestureAddr string
	flagRandomizer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a local game.

Controls:
  Left/A, Right/D   - Move
  Down/S            - Soft drop
  Up/W/Space        - Rotate
  P                 - Pause/resume
  R                 - Restart (after game over)
  Ctrl+S            - Save a PNG screenshot
  Q/Ctrl+C          - Quit

With --gesture-addr a WebSocket endpoint accepts a hand detector at /ws.
Tilt the hand to move, point up with the index finger to rotate.

Examples:
  handtris play
  handtris play --randomizer bag
  handtris play --gesture-addr :8090 --log-file handtris.log
  handtris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagGestureAddr, "gesture-addr", "", "Listen address for the gesture WebSocket (empty disables)")
	playCmd.Flags().StringVar(&flagRandomizer, "randomizer", "uniform", "Piece randomizer: uniform or bag")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "handtris")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameIDFor(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	p := tui.NewProgram(game, store, rc, tui.Options{
		Player: playerName(),
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	if cfg.Gesture.Addr != "" {
		hub := gesture.NewHub(gesture.Config{
			Addr:           cfg.Gesture.Addr,
			Sustain:        cfg.Gesture.Sustain(),
			AllowedOrigins: cfg.Gesture.AllowedOrigins,
			Mirrored:       cfg.Gesture.Mirrored,
		}, logger.WithPrefix("gesture"))
		hub.OnGesture(func(s gesture.Symbol) {
			p.Send(tui.GestureMsg{Symbol: s})
		})
		go func() {
			// Keyboard play continues if the endpoint cannot start.
			if err := hub.Serve(ctx); err != nil {
				logger.Warn("gesture endpoint failed", "error", err)
			}
		}()
	}

	_, runErr := p.Run()
	cancel()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName labels local scores with the OS user.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
