package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.handtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTetris(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := parseTetris(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedTetris(), nil
}

// embeddedTetris decodes the embedded YAML, falling back to hardcoded values.
func embeddedTetris() TetrisConfig {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig()
	}
	return cfg
}

// parseTetris decodes data on top of the embedded defaults.
func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := embeddedTetris()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".handtris", "configs", filename)
}

// Environment variables consulted by ApplyEnv.
const (
	EnvGestureAddr = "HANDTRIS_GESTURE_ADDR"
	EnvDB          = "HANDTRIS_DB"
	EnvRandomizer  = "HANDTRIS_RANDOMIZER"
	EnvSustainMs   = "HANDTRIS_GESTURE_SUSTAIN_MS"
)

// ApplyEnv overrides settings from the environment. lookup is usually
// os.LookupEnv.
func ApplyEnv(cfg *TetrisConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGestureAddr); ok {
		cfg.Gesture.Addr = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.Storage.DB = v
	}
	if v, ok := lookup(EnvRandomizer); ok && v != "" {
		cfg.Randomizer = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvSustainMs); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSustainMs, err)
		}
		cfg.Gesture.SustainMs = ms
	}
	return nil
}
