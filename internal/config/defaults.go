package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Rules: RulesConfig{
			BasePointsPerCell: 10,
			DefaultKinds:      5,
			GeneratorRetries:  20,
			MaxCascadeDepth:   50,
			ShuffleAttempts:   100,
			ReviveMoves:       5,
			MaxRevives:        1,
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
			Scaling: ScalingConfig{
				MovesFactor:  0.5,
				TargetFactor: 0.5,
			},
		},
		Pacing: PacingConfig{
			PhaseDelayMS: 120,
			TickRate:     30,
		},
		Theme:  "gems",
		Themes: map[string]ThemeConfig{"gems": DefaultTheme()},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultTheme returns the built-in gem theme.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Name: "Gems",
		Pieces: []PieceStyle{
			{Name: "ruby", Glyph: "◆", Color: "red"},
			{Name: "amber", Glyph: "●", Color: "orange"},
			{Name: "topaz", Glyph: "▲", Color: "yellow"},
			{Name: "jade", Glyph: "■", Color: "green"},
			{Name: "sapphire", Glyph: "♦", Color: "blue"},
			{Name: "amethyst", Glyph: "★", Color: "magenta"},
		},
		Rock:   PieceStyle{Name: "rock", Glyph: "▓", Color: "gray"},
		Locked: "bright_white",
		Cursor: "bright_cyan",
	}
}
