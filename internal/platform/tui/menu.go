package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuWonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// MenuModel is the level picker. Each row shows the level's best score.
type MenuModel struct {
	levels   []levels.Level
	stats    map[string]storage.LevelStats
	cursor   int
	width    int
	height   int
	keys     *KeyMapper
	quitting bool
	selected *levels.Level
	scores   bool // user pressed Tab for the scoreboard
}

// NewMenuModel creates a menu over the catalogue, with the cursor on cursor.
func NewMenuModel(deps Deps, width, height, cursor int) MenuModel {
	m := MenuModel{
		levels: deps.Catalogue.Levels(),
		width:  width,
		height: height,
		keys:   NewKeyMapper(),
	}
	m.cursor = max(0, min(cursor, len(m.levels)-1))
	if deps.Store != nil {
		stats, err := deps.Store.AllLevelStats()
		if err != nil {
			deps.logger().Warn("could not load level stats", "error", err)
		}
		m.stats = stats
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			lvl := m.levels[m.cursor]
			m.selected = &lvl
		}
	case MenuActionScoreboard:
		m.scores = true
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("M A T C H - 3"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuActiveStyle
		}
		line := style.Render(fmt.Sprintf("%s%2d. %-12s %2d moves  target %5d", cursor, lvl.Order, lvl.Name, lvl.Moves, lvl.TargetProgress))
		if st, ok := m.stats[lvl.ID]; ok {
			mark := menuDimStyle.Render(fmt.Sprintf("  best %d", st.BestScore))
			if st.Wins > 0 {
				mark = menuWonStyle.Render(fmt.Sprintf("  ★ best %d", st.BestScore))
			}
			line += mark
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.levels) > 0 {
		if tut := m.levels[m.cursor].Tutorial; tut != "" {
			b.WriteString("\n")
			b.WriteString(centerText(menuDimStyle.Render(tut), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen level, or nil if none was chosen.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// Cursor returns the highlighted row.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// centerText centers text within width, measuring styled text by its printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
