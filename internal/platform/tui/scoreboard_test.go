package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

func seedResults(t *testing.T, deps Deps) {
	t.Helper()
	for _, r := range []storage.Result{
		{LevelID: "meadow", Outcome: match3.OutcomeLost, Score: 300, MovesUsed: 20, ComboMax: 2},
		{LevelID: "meadow", Outcome: match3.OutcomeWon, Score: 900, MovesUsed: 14, ComboMax: 4},
		{LevelID: "brook", Outcome: match3.OutcomeWon, Score: 1500, MovesUsed: 18, ComboMax: 3},
	} {
		_, err := deps.Store.SaveResult(r)
		require.NoError(t, err)
	}
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sm
}

func TestScoreboardCyclesLevels(t *testing.T) {
	deps := testDeps(t, 0)
	seedResults(t, deps)

	m := NewScoreboardModel(deps, 100, 30, 0)
	require.Len(t, m.results, 2)
	assert.Equal(t, 900, m.results[0].Score)
	assert.Equal(t, 2, m.stats.Plays)
	assert.Equal(t, 1, m.stats.Wins)
	assert.Contains(t, m.View(), "HIGH SCORES - Meadow")

	m = updateScoreboard(t, m, keyPress("l"))
	assert.Equal(t, 1, m.Cursor())
	require.Len(t, m.results, 1)
	assert.Equal(t, 1500, m.results[0].Score)

	m = updateScoreboard(t, m, keyPress("h"))
	m = updateScoreboard(t, m, keyPress("h"))
	assert.Equal(t, deps.Catalogue.Len()-1, m.Cursor(), "wraps to the last level")
	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), "No results recorded yet.")
}

func TestScoreboardBackAndQuit(t *testing.T) {
	deps := testDeps(t, 0)
	m := NewScoreboardModel(deps, 60, 20, 99)
	assert.Equal(t, deps.Catalogue.Len()-1, m.Cursor(), "cursor is clamped")
	assert.False(t, m.showSidebar)

	back := updateScoreboard(t, m, keyPress("esc"))
	assert.True(t, back.IsGoingBack())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	next, cmd := m.Update(keyPress("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestMenuModel(t *testing.T) {
	deps := testDeps(t, 0)
	seedResults(t, deps)

	m := NewMenuModel(deps, 80, 24, 0)
	view := m.View()
	assert.Contains(t, view, "M A T C H - 3")
	assert.Contains(t, view, "★ best 900")
	assert.Contains(t, view, "best 1500")

	next, _ := m.Update(keyPress("j"))
	m = next.(MenuModel)
	assert.Equal(t, 1, m.Cursor())
	assert.Nil(t, m.Selected())

	next, _ = m.Update(keyPress("enter"))
	m = next.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, "brook", m.Selected().ID)
	assert.False(t, m.IsQuitting())

	next, _ = m.Update(keyPress("tab"))
	assert.True(t, next.(MenuModel).WantsScoreboard())

	next, cmd := m.Update(keyPress("q"))
	assert.True(t, next.(MenuModel).IsQuitting())
	assert.NotNil(t, cmd)
}
