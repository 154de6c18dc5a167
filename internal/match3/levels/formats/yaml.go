// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// YAMLLevel is the on-disk form of one level.
//
// Layout is optional. When present it has one string per board row:
//
//	.  normal cell
//	#  rock
//	L  locked cell
type YAMLLevel struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Order    int      `yaml:"order,omitempty"`
	Moves    int      `yaml:"moves"`
	Target   int      `yaml:"target"`
	Kinds    int      `yaml:"kinds,omitempty"`
	Tutorial string   `yaml:"tutorial,omitempty"`
	Layout   []string `yaml:"layout,omitempty"`
}

// YAMLCatalogue holds several levels in one document.
type YAMLCatalogue struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// Level is a parsed level ready for validation.
type Level struct {
	Order  int
	Config match3.LevelConfig
}

// ParseYAML parses either a single level or a catalogue document.
// Catalogue entries without an explicit order take their position.
func ParseYAML(data []byte, size int) ([]Level, error) {
	var cat YAMLCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	docs := cat.Levels
	if len(docs) == 0 {
		var single YAMLLevel
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
		if single.ID == "" {
			return nil, fmt.Errorf("yaml: no levels found")
		}
		docs = []YAMLLevel{single}
	}

	out := make([]Level, 0, len(docs))
	for i, yl := range docs {
		layout, err := ParseLayout(yl.Layout, size)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", yl.ID, err)
		}
		order := yl.Order
		if order == 0 {
			order = i + 1
		}
		out = append(out, Level{
			Order: order,
			Config: match3.LevelConfig{
				ID:             yl.ID,
				Name:           yl.Name,
				Moves:          yl.Moves,
				TargetProgress: yl.Target,
				Kinds:          yl.Kinds,
				Layout:         layout,
				Tutorial:       yl.Tutorial,
			},
		})
	}
	return out, nil
}

// ParseLayout converts layout rows into an override map.
// An empty slice means no overrides.
func ParseLayout(rows []string, size int) (match3.Layout, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) != size {
		return nil, fmt.Errorf("layout has %d rows, want %d", len(rows), size)
	}
	layout := make(match3.Layout)
	for row, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("layout row %d has %d columns, want %d", row, len(line), size)
		}
		for col := 0; col < size; col++ {
			switch line[col] {
			case '.':
			case '#':
				layout[row*size+col] = match3.OverrideRock
			case 'L':
				layout[row*size+col] = match3.OverrideLock
			default:
				return nil, fmt.Errorf("layout row %d col %d: unknown cell %q", row, col, line[col])
			}
		}
	}
	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
