package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

func letterPalette() Palette {
	return NewPalette(config.ThemeConfig{
		Pieces: make([]config.PieceStyle, match3.MaxKinds),
		Locked: "white",
		Cursor: "cyan",
	})
}

func TestPaletteFallsBackToLetters(t *testing.T) {
	p := letterPalette()
	r, c := p.Glyph(match3.KindBlue)
	assert.Equal(t, 'E', r)
	assert.Equal(t, core.ColorDefault, c)
	r, _ = p.Glyph(match3.KindRock)
	assert.Equal(t, '#', r)
	assert.Equal(t, core.ColorCyan, p.Cursor)

	gems := NewPalette(config.DefaultTheme())
	r, c = gems.Glyph(match3.KindRed)
	assert.Equal(t, '◆', r)
	assert.Equal(t, core.ColorRed, c)
}

func TestDrawGameBoard(t *testing.T) {
	b := match3.MustParseBoard("AB", "cD")
	view := GameView{
		Title: "T",
		Snapshot: match3.Snapshot{
			Size:           2,
			Cells:          b.Cells,
			SelectedIndex:  match3.NoSelection,
			Score:          40,
			Contribution:   0.5,
			MovesRemaining: 5,
		},
		Target: 80,
		Cursor: 0,
	}
	w, h := MinScreenSize(2)
	s := core.NewScreen(w, h)
	DrawGame(s, view, letterPalette())

	assert.True(t, strings.HasPrefix(s.Row(3), " │[A] B │"), "row 3 = %q", s.Row(3))
	assert.True(t, strings.HasPrefix(s.Row(4), " │(C) D │"), "row 4 = %q", s.Row(4))
	assert.Contains(t, s.Row(2), "Score  40")
	assert.Contains(t, s.Row(3), "Target 80")
	assert.Contains(t, s.Row(4), "50%")
	assert.Equal(t, core.ColorCyan, s.GetCell(2, 3).Color)

	// selection and hint markers
	view.Cursor = 3
	view.Snapshot.SelectedIndex = 0
	view.Hint = &match3.Move{A: 0, B: 1}
	DrawGame(s, view, letterPalette())
	assert.True(t, strings.HasPrefix(s.Row(3), " │<A>*B*│"), "row 3 = %q", s.Row(3))
}

func TestDrawGameTooSmall(t *testing.T) {
	s := core.NewScreen(20, 5)
	DrawGame(s, GameView{Snapshot: match3.Snapshot{Size: 8}}, letterPalette())
	assert.Contains(t, s.String(), "too small")
}

func TestDrawGameBanner(t *testing.T) {
	b := match3.MustParseBoard(
		"AABCDCAA",
		"CCACCADB",
		"DBABABBC",
		"BBCCAADA",
		"DAACCBDB",
		"AABADBCA",
		"CCBADCAA",
		"DBCBBDBC",
	)
	w, h := MinScreenSize(8)
	s := core.NewScreen(w, h)
	view := GameView{Snapshot: match3.Snapshot{Size: 8, Cells: b.Cells, SelectedIndex: match3.NoSelection, Outcome: match3.OutcomeWon}}

	DrawGame(s, view, letterPalette())
	assert.Contains(t, s.Row(6), "LEVEL CLEAR")

	view.Busy = true
	DrawGame(s, view, letterPalette())
	assert.NotContains(t, s.String(), "LEVEL CLEAR")
}

func TestStatusLine(t *testing.T) {
	won := GameView{Snapshot: match3.Snapshot{Outcome: match3.OutcomeWon}, CanNext: true}
	assert.Contains(t, statusLine(won), "n next level")
	won.CanNext = false
	assert.Contains(t, statusLine(won), "Last level")

	lost := GameView{Snapshot: match3.Snapshot{Outcome: match3.OutcomeLost}, RevivesLeft: 1}
	assert.Contains(t, statusLine(lost), "e +moves (1 left)")
	lost.RevivesLeft = 0
	assert.Equal(t, "r retry  esc menu", statusLine(lost))

	playing := GameView{Status: "Combo x2!"}
	assert.Equal(t, "Combo x2!", statusLine(playing))
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y int
		want int
		ok   bool
	}{
		{2, 3, 0, true},
		{4, 3, 0, true},
		{5, 3, 1, true},
		{15, 6, 28, true},
		{25, 10, 63, true},
		{1, 3, 0, false},  // frame
		{26, 3, 0, false}, // frame
		{2, 11, 0, false}, // below the board
	}
	for _, tt := range tests {
		got, ok := cellAt(8, tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "cellAt(%d, %d)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, tt.want, got, "cellAt(%d, %d)", tt.x, tt.y)
		}
	}
}
