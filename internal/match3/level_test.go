package match3

import (
	"errors"
	"testing"
)

func TestLevelValidate(t *testing.T) {
	g := NewGrid(DefaultSize)
	tests := []struct {
		name  string
		level LevelConfig
		code  string
	}{
		{"ok", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100}, ""},
		{"ok with layout", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100, Kinds: 6, Layout: Layout{0: OverrideRock, 63: OverrideLock}}, ""},
		{"missing id", LevelConfig{Moves: 10, TargetProgress: 100}, "EMPTY_ID"},
		{"zero moves", LevelConfig{ID: "a", TargetProgress: 100}, "BAD_MOVES"},
		{"zero target", LevelConfig{ID: "a", Moves: 10}, "BAD_TARGET"},
		{"too few kinds", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100, Kinds: 3}, "BAD_KINDS"},
		{"too many kinds", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100, Kinds: 7}, "BAD_KINDS"},
		{"layout off board", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100, Layout: Layout{64: OverrideRock}}, "BAD_LAYOUT"},
		{"unknown override", LevelConfig{ID: "a", Moves: 10, TargetProgress: 100, Layout: Layout{3: Override(9)}}, "BAD_LAYOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate(g)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Code != tt.code {
				t.Errorf("Code = %s, want %s", cfgErr.Code, tt.code)
			}
		})
	}
}

func TestContribution(t *testing.T) {
	tests := []struct {
		score, target int
		want          float64
	}{
		{0, 100, 0},
		{50, 100, 0.5},
		{100, 100, 1},
		{250, 100, 1},
	}
	for _, tt := range tests {
		if got := Contribution(tt.score, tt.target); got != tt.want {
			t.Errorf("Contribution(%d, %d) = %v, want %v", tt.score, tt.target, got, tt.want)
		}
	}
}

func TestStepPoints(t *testing.T) {
	r := DefaultRules()
	if got := r.StepPoints(3, 1); got != 30 {
		t.Errorf("StepPoints(3, 1) = %d, want 30", got)
	}
	if got := r.StepPoints(4, 3); got != 120 {
		t.Errorf("StepPoints(4, 3) = %d, want 120", got)
	}
}
