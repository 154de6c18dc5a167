package match3

import "fmt"

// Override marks a layout slot that deviates from a normal random cell.
type Override uint8

const (
	OverrideNone Override = iota
	OverrideRock          // immovable obstacle
	OverrideLock          // random kind, locked until an adjacent match
)

// String returns the override name.
func (o Override) String() string {
	switch o {
	case OverrideNone:
		return "none"
	case OverrideRock:
		return "rock"
	case OverrideLock:
		return "lock"
	default:
		return fmt.Sprintf("override(%d)", uint8(o))
	}
}

// Layout maps cell indices to overrides. Missing entries are normal cells.
type Layout map[int]Override

// LevelConfig is the immutable definition of one level.
type LevelConfig struct {
	ID             string
	Name           string
	Moves          int    // starting move budget
	TargetProgress int    // score needed to win
	Kinds          int    // active playable kinds, 0 = rules default
	Layout         Layout // optional obstacle layout
	Tutorial       string
}

// ConfigError describes an invalid level definition.
type ConfigError struct {
	Code    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the level against the board geometry.
func (l LevelConfig) Validate(g Grid) error {
	if l.ID == "" {
		return &ConfigError{Code: "EMPTY_ID", Message: "level id is required"}
	}
	if l.Moves <= 0 {
		return &ConfigError{
			Code:    "BAD_MOVES",
			Message: fmt.Sprintf("level %s: moves must be positive, got %d", l.ID, l.Moves),
		}
	}
	if l.TargetProgress <= 0 {
		return &ConfigError{
			Code:    "BAD_TARGET",
			Message: fmt.Sprintf("level %s: target must be positive, got %d", l.ID, l.TargetProgress),
		}
	}
	if l.Kinds != 0 && (l.Kinds < MinKinds || l.Kinds > MaxKinds) {
		return &ConfigError{
			Code:    "BAD_KINDS",
			Message: fmt.Sprintf("level %s: kinds must be in [%d, %d], got %d", l.ID, MinKinds, MaxKinds, l.Kinds),
		}
	}
	for i, o := range l.Layout {
		if !g.IsValidIndex(i) {
			return &ConfigError{
				Code:    "BAD_LAYOUT",
				Message: fmt.Sprintf("level %s: layout index %d outside %dx%d board", l.ID, i, g.N, g.N),
			}
		}
		if o > OverrideLock {
			return &ConfigError{
				Code:    "BAD_LAYOUT",
				Message: fmt.Sprintf("level %s: unknown override %d at index %d", l.ID, o, i),
			}
		}
	}
	return nil
}

// KindCount resolves the number of active kinds for this level.
func (l LevelConfig) KindCount(r Rules) int {
	if l.Kinds != 0 {
		return l.Kinds
	}
	return r.DefaultKinds
}
