// Package levels provides the level catalogue: an embedded default set and
// a loader for level files on disk. This package depends on match3 but
// match3 does not depend on levels.
package levels

import (
	_ "embed"
	"fmt"
	"maps"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/match3/levels/formats"
)

//go:embed default.yaml
var defaultCatalogue []byte

// Level is one catalogue entry.
type Level struct {
	match3.LevelConfig
	Order    int    // position in the catalogue, 1-based
	FilePath string // empty for embedded levels
}

// clone returns l with its own copy of the layout.
func (l Level) clone() Level {
	l.Layout = maps.Clone(l.Layout)
	return l
}

// Catalogue is an ordered, read-only set of levels. Levels handed out
// carry their own layout copies.
type Catalogue struct {
	levels []Level
	byID   map[string]int
}

// NewCatalogue validates levels against the board size and orders them by
// Order, then ID. Duplicate IDs are rejected.
func NewCatalogue(levels []Level, size int) (*Catalogue, error) {
	g := match3.NewGrid(size)
	sorted := make([]Level, len(levels))
	for i, lvl := range levels {
		sorted[i] = lvl.clone()
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	c := &Catalogue{levels: sorted, byID: make(map[string]int, len(sorted))}
	for i, lvl := range sorted {
		if err := lvl.Validate(g); err != nil {
			return nil, fmt.Errorf("levels: %w", err)
		}
		if _, dup := c.byID[lvl.ID]; dup {
			return nil, fmt.Errorf("levels: duplicate level id %q", lvl.ID)
		}
		c.byID[lvl.ID] = i
		c.levels[i].Order = i + 1
	}
	return c, nil
}

// Default returns the built-in catalogue.
func Default() (*Catalogue, error) {
	parsed, err := formats.ParseYAML(defaultCatalogue, match3.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("levels: parse embedded catalogue: %w", err)
	}
	return NewCatalogue(fromParsed(parsed, ""), match3.DefaultSize)
}

// Load returns the catalogue from dir, or the built-in one when dir is empty.
func Load(dir string) (*Catalogue, error) {
	if dir == "" {
		return Default()
	}
	return NewLoader(dir).Catalogue()
}

// Levels returns all levels in order.
func (c *Catalogue) Levels() []Level {
	out := make([]Level, len(c.levels))
	for i, lvl := range c.levels {
		out[i] = lvl.clone()
	}
	return out
}

// Len returns the number of levels.
func (c *Catalogue) Len() int {
	return len(c.levels)
}

// Get looks up a level by ID.
func (c *Catalogue) Get(id string) (Level, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, false
	}
	return c.levels[i].clone(), true
}

// At returns the level at a 0-based position.
func (c *Catalogue) At(i int) (Level, bool) {
	if i < 0 || i >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[i].clone(), true
}

// Next returns the level after id, if any.
func (c *Catalogue) Next(id string) (Level, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, false
	}
	return c.At(i + 1)
}

// Resolve finds a level by ID or by 1-based position ("3").
func (c *Catalogue) Resolve(ref string) (Level, error) {
	if lvl, ok := c.Get(ref); ok {
		return lvl, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if lvl, ok := c.At(n - 1); ok {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: unknown level %q", ref)
}

func fromParsed(parsed []formats.Level, path string) []Level {
	out := make([]Level, len(parsed))
	for i, p := range parsed {
		out[i] = Level{LevelConfig: p.Config, Order: p.Order, FilePath: path}
	}
	return out
}
