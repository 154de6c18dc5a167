package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Deps are the collaborators shared by every screen of a session.
type Deps struct {
	Catalogue *levels.Catalogue
	Store     *storage.Store // nil disables score keeping
	Config    config.Match3Config
	Preset    config.DifficultyPreset
	Logger    *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// bestScore returns the stored best for a level, or 0 without a store.
func (d Deps) bestScore(levelID string) int {
	if d.Store == nil {
		return 0
	}
	best, err := d.Store.BestScore(levelID)
	if err != nil {
		d.logger().Warn("could not read best score", "level", levelID, "error", err)
		return 0
	}
	return best
}
