package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/handtris/internal/config"
	"github.com/vovakirdan/handtris/internal/games/tetris"
)

// loadSettings resolves the game configuration: file, then environment,
// then explicitly set flags. The result is installed for new games.
func loadSettings(cmd *cobra.Command) (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return config.TetrisConfig{}, err
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if f := cmd.Flags().Lookup("randomizer"); f != nil && f.Changed {
		cfg.Randomizer = f.Value.String()
	}
	if f := cmd.Flags().Lookup("gesture-addr"); f != nil && f.Changed {
		cfg.Gesture.Addr = f.Value.String()
	}

	if err := tetris.SetConfig(cfg); err != nil {
		return config.TetrisConfig{}, err
	}
	return cfg, nil
}

// gameIDFor returns the registry variant for the configured randomizer.
func gameIDFor(cfg config.TetrisConfig) string {
	return tetris.GameID(tetris.Randomizer(cfg.Randomizer))
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
