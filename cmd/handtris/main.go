// handtris is a Tetris for the terminal that can be steered with hand
// gestures from a webcam detector.
//
// Usage:
//
//	handtris list            - List game variants
//	handtris play            - Play locally, optionally with a gesture endpoint
//	handtris serve           - Start SSH server for remote play
//	handtris scores [game]   - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece order
//	--db <path|dsn>      - Scores database (default: ~/.handtris/scores.db)
//	--config <path>      - Custom tetris.yaml
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/handtris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if os.Getenv("HANDTRIS_ENV") != "production" {
		//nolint:errcheck // A missing .env file is fine
		godotenv.Load()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "handtris",
	Short: "Handtris - Tetris in your terminal, steered by hand gestures",
	Long: `Handtris is a terminal Tetris. Play it with the keyboard, or connect a
webcam hand detector to the gesture endpoint and tilt your hand to move.

Available commands:
  list     - Show game variants
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  handtris play
  handtris play --gesture-addr :8090
  handtris serve --ssh :2222
  handtris scores tetris_bag`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.handtris/scores.db", "Scores database path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
