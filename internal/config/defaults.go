package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols: 10,
			Rows: 20,
		},
		Timing: TimingConfig{
			BaseDropMs: 1000,
			MinDropMs:  100,
			DropStepMs: 100,
		},
		Scoring: ScoringConfig{
			LinePoints:     100,
			SoftDropPoints: 1,
			LinesPerLevel:  10,
		},
		Randomizer: "uniform",
		Gesture: GestureConfig{
			SustainMs: 300,
			Mirrored:  true,
		},
		Render: RenderConfig{
			BlockSize: 30,
			Palette: PaletteConfig{
				Pieces: []string{
					"#00f0f0", "#f0f000", "#a000f0", "#00f000",
					"#f00000", "#0000f0", "#f0a000",
				},
				Background: "#222222",
				Grid:       "#444444",
				Overlay:    "#000000b3",
				Highlight:  "#ffffff4d",
				Text:       "#ffffff",
			},
		},
		Storage: StorageConfig{
			DB: "~/.handtris/scores.db",
		},
	}
}
