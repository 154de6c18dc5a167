package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/match3/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
	Size int // board side, 0 means match3.DefaultSize
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Size: match3.DefaultSize}
}

func (l *Loader) size() int {
	if l.Size <= 0 {
		return match3.DefaultSize
	}
	return l.Size
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Levels from different files are
// ordered by their order field, then ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		parsed, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, parsed...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	c, err := NewCatalogue(levels, l.size())
	if err != nil {
		return nil, err
	}
	return c.Levels(), nil
}

// LoadFile loads every level in a single file.
func (l *Loader) LoadFile(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := formats.ParseYAML(data, l.size())
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return fromParsed(parsed, path), nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in catalogue order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Catalogue loads the directory as a catalogue. An empty directory is an error.
func (l *Loader) Catalogue() (*Catalogue, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", l.Root)
	}
	return NewCatalogue(levels, l.size())
}
