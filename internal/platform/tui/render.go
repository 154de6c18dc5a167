package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout constants.
const (
	cellWidth  = 3  // bracket, glyph, bracket
	hudWidth   = 24 // columns right of the board
	hudHeight  = 8  // rows used by drawHUD
	barWidth   = 20
	boardTop   = 2
	boardLeft  = 1
	helpFooter = "arrows move  space/click pick  shift+arrow swipe  h hint  r restart  q quit"
)

// GameView is everything DrawGame needs to paint one frame.
type GameView struct {
	Title       string
	Snapshot    match3.Snapshot
	Target      int
	Cursor      int
	Hint        *match3.Move // nil when no hint is shown
	Best        int
	RevivesLeft int
	CanNext     bool
	Busy        bool // phase playback in flight
	Status      string
}

// boardRect returns the framed board area for a board of size n.
func boardRect(n int) core.Rect {
	return core.NewRect(boardLeft, boardTop, n*cellWidth+2, n+2)
}

// cellAt maps a screen position to the board cell drawn there.
func cellAt(n, x, y int) (int, bool) {
	cells := boardRect(n).Inset(1)
	if !cells.Contains(x, y) {
		return 0, false
	}
	return (y-cells.Y)*n + (x-cells.X)/cellWidth, true
}

// footerRow returns the first row below both the board and the HUD.
func footerRow(n int) int {
	return max(boardRect(n).Bottom(), boardTop+hudHeight)
}

// MinScreenSize returns the smallest screen that fits a board of size n.
func MinScreenSize(n int) (w, h int) {
	return boardRect(n).Right() + 2 + hudWidth, footerRow(n) + 2
}

// DrawGame paints the board, HUD and footer onto s.
func DrawGame(s *core.Screen, v GameView, p Palette) {
	s.Clear()
	n := v.Snapshot.Size
	if w, h := MinScreenSize(n); s.Width() < w || s.Height() < h {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", w, h), core.ColorYellow)
		return
	}

	s.DrawTextColored(boardLeft, 0, v.Title, core.ColorBrightWhite)

	box := boardRect(n)
	s.DrawBox(box, core.ColorGray)
	cells := box.Inset(1)
	for i, c := range v.Snapshot.Cells {
		row, col := i/n, i%n
		drawCell(s, cells.X+col*cellWidth, cells.Y+row, i, c, v, p)
	}

	drawHUD(s, box.Right()+2, box.Y, v)

	switch {
	case v.Busy:
	case v.Snapshot.Outcome == match3.OutcomeWon:
		drawBanner(s, box, "LEVEL CLEAR", core.ColorBrightGreen)
	case v.Snapshot.Outcome == match3.OutcomeLost:
		drawBanner(s, box, "OUT OF MOVES", core.ColorBrightRed)
	}

	footer := footerRow(n)
	s.DrawTextColored(boardLeft, footer, statusLine(v), core.ColorYellow)
	s.DrawTextColored(boardLeft, footer+1, helpFooter, core.ColorGray)
}

func drawCell(s *core.Screen, x, y, i int, c match3.Cell, v GameView, p Palette) {
	glyph, color := p.Glyph(c.Kind)
	if c.Matched {
		glyph, color = '✶', core.ColorBrightWhite
	}

	left, right, frame := ' ', ' ', core.ColorDefault
	switch {
	case i == v.Cursor && !v.Busy:
		left, right, frame = '[', ']', p.Cursor
	case i == v.Snapshot.SelectedIndex:
		left, right, frame = '<', '>', p.Cursor
	case v.Hint != nil && (i == v.Hint.A || i == v.Hint.B):
		left, right, frame = '*', '*', core.ColorBrightYellow
	case c.Locked:
		left, right, frame = '(', ')', p.Locked
	}

	s.SetColored(x, y, left, frame)
	s.SetColored(x+1, y, glyph, color)
	s.SetColored(x+2, y, right, frame)
}

func drawHUD(s *core.Screen, x, y int, v GameView) {
	snap := v.Snapshot
	line := func(label string, value any, c core.Color) {
		s.DrawText(x, y, fmt.Sprintf("%-7s", label))
		s.DrawTextColored(x+7, y, fmt.Sprint(value), c)
		y++
	}

	line("Score", snap.Score, core.ColorBrightWhite)
	line("Target", v.Target, core.ColorDefault)

	filled := core.Clamp(int(snap.Contribution*barWidth), 0, barWidth)
	s.DrawTextColored(x, y, strings.Repeat("█", filled), core.ColorGreen)
	s.DrawTextColored(x+filled, y, strings.Repeat("░", barWidth-filled), core.ColorGray)
	s.DrawText(x+barWidth+1, y, fmt.Sprintf("%d%%", int(snap.Contribution*100)))
	y += 2

	movesColor := core.ColorDefault
	if snap.MovesRemaining <= 3 {
		movesColor = core.ColorBrightRed
	}
	line("Moves", snap.MovesRemaining, movesColor)
	if snap.Combo > 1 {
		line("Combo", fmt.Sprintf("x%d", snap.Combo), core.ColorBrightMagenta)
	} else {
		y++
	}
	line("Best", v.Best, core.ColorDefault)
	if v.Busy {
		line("Phase", snap.Phase, core.ColorCyan)
	}
}

func drawBanner(s *core.Screen, board core.Rect, text string, c core.Color) {
	r := board.Centered(len(text)+4, 3)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}
	s.DrawBox(r, c)
	s.DrawTextColored(r.X+2, r.Y+1, text, c)
}

func statusLine(v GameView) string {
	if v.Busy {
		return v.Status
	}
	switch v.Snapshot.Outcome {
	case match3.OutcomeWon:
		if v.CanNext {
			return "n next level  r replay  esc menu"
		}
		return "Last level cleared!  r replay  esc menu"
	case match3.OutcomeLost:
		if v.RevivesLeft > 0 {
			return fmt.Sprintf("e +moves (%d left)  r retry  esc menu", v.RevivesLeft)
		}
		return "r retry  esc menu"
	}
	return v.Status
}
