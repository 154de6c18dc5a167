package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// DifficultyConfig selects a preset and how strongly presets bend a level.
type DifficultyConfig struct {
	Preset  string        `yaml:"preset"`
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines how much a preset moves the move budget and target
// away from the catalogue values.
type ScalingConfig struct {
	MovesFactor  float64 `yaml:"moves_factor"`
	TargetFactor float64 `yaml:"target_factor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the difficulty level (0.0 easy to 1.0 hard)
// for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.3
	}
}

// IsFixedPreset returns true if the preset leaves levels untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyDifficulty scales a level's move budget and target for preset.
// Normal and fixed return the level unchanged. Easier presets grant more
// moves and a lower target; harder ones the opposite.
func ApplyDifficulty(level match3.LevelConfig, preset DifficultyPreset, cfg DifficultyConfig) match3.LevelConfig {
	if IsFixedPreset(preset) {
		return level
	}
	delta := InitialLevelForPreset(DifficultyNormal) - InitialLevelForPreset(preset)
	if delta == 0 {
		return level
	}

	moves := float64(level.Moves) * (1 + delta*cfg.Scaling.MovesFactor)
	target := float64(level.TargetProgress) * (1 - delta*cfg.Scaling.TargetFactor)
	level.Moves = max(1, int(math.Round(moves)))
	level.TargetProgress = max(1, int(math.Round(target)))
	return level
}
