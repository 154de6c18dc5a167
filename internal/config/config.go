// Package config provides YAML-based configuration loading for the match-3
// engine and its terminal hosts.
package config

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Match3Config contains all tunable settings.
type Match3Config struct {
	Rules      RulesConfig            `yaml:"rules"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
	Pacing     PacingConfig           `yaml:"pacing"`
	Theme      string                 `yaml:"theme"`
	Themes     map[string]ThemeConfig `yaml:"themes"`
	Log        LogConfig              `yaml:"log"`
}

// RulesConfig mirrors match3.Rules.
type RulesConfig struct {
	BasePointsPerCell int `yaml:"base_points_per_cell"`
	DefaultKinds      int `yaml:"default_kinds"`
	GeneratorRetries  int `yaml:"generator_retries"`
	MaxCascadeDepth   int `yaml:"max_cascade_depth"`
	ShuffleAttempts   int `yaml:"shuffle_attempts"`
	ReviveMoves       int `yaml:"revive_moves"`
	MaxRevives        int `yaml:"max_revives"` // revives offered per level
}

// PacingConfig controls how fast hosts replay cascade phases.
type PacingConfig struct {
	PhaseDelayMS int `yaml:"phase_delay_ms"` // pause between phase snapshots
	TickRate     int `yaml:"tick_rate"`      // UI ticks per second
}

// ThemeConfig maps kinds to glyphs and colors.
// Pieces is indexed by playable kind order (red, orange, ...).
type ThemeConfig struct {
	Name   string       `yaml:"name"`
	Pieces []PieceStyle `yaml:"pieces"`
	Rock   PieceStyle   `yaml:"rock"`
	Locked string       `yaml:"locked_color"`
	Cursor string       `yaml:"cursor_color"`
}

// PieceStyle defines how one kind is drawn.
type PieceStyle struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// EngineRules converts the rules section for the engine.
// Zero fields fall back to match3 defaults.
func (c Match3Config) EngineRules() match3.Rules {
	return match3.Rules{
		BasePointsPerCell: c.Rules.BasePointsPerCell,
		DefaultKinds:      c.Rules.DefaultKinds,
		GeneratorRetries:  c.Rules.GeneratorRetries,
		MaxCascadeDepth:   c.Rules.MaxCascadeDepth,
		ShuffleAttempts:   c.Rules.ShuffleAttempts,
		ReviveMoves:       c.Rules.ReviveMoves,
	}
}

// PhaseDelay returns the pause between replayed phases.
func (c Match3Config) PhaseDelay() time.Duration {
	if c.Pacing.PhaseDelayMS <= 0 {
		return 0
	}
	return time.Duration(c.Pacing.PhaseDelayMS) * time.Millisecond
}

// ActiveTheme returns the selected theme, falling back to the built-in one.
func (c Match3Config) ActiveTheme() ThemeConfig {
	if t, ok := c.Themes[c.Theme]; ok && len(t.Pieces) >= match3.MaxKinds {
		return t
	}
	return DefaultTheme()
}

// Style returns the style for a kind in the theme.
func (t ThemeConfig) Style(k match3.Kind) PieceStyle {
	switch {
	case k.Playable() && int(k-match3.KindRed) < len(t.Pieces):
		return t.Pieces[k-match3.KindRed]
	case k == match3.KindRock:
		return t.Rock
	default:
		return PieceStyle{Name: "empty", Glyph: " ", Color: "default"}
	}
}
