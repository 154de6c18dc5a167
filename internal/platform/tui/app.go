package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// scoreboard one Tab away. It backs the menu command and SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	username string
	current  screenKind
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		deps:     deps,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(deps, cfg.ScreenW, cfg.ScreenH, 0),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.deps, m.config.ScreenW, m.config.ScreenH, m.menu.Cursor())
		m.current = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		level := *m.menu.Selected()
		cfg := m.config
		cfg.Seed = 0 // fresh board every time
		game, err := NewGameModel(m.deps, level, cfg)
		if err != nil {
			m.deps.logger().Error("could not start level", "level", level.ID, "user", m.username, "error", err)
			m.menu = NewMenuModel(m.deps, m.config.ScreenW, m.config.ScreenH, m.menu.Cursor())
			return m, nil
		}
		m.game = game
		m.current = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		cursor := m.game.level.Order - 1
		m.menu = NewMenuModel(m.deps, m.config.ScreenW, m.config.ScreenH, cursor)
		m.current = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.menu = NewMenuModel(m.deps, m.config.ScreenW, m.config.ScreenH, m.scores.Cursor())
		m.current = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu, game and scoreboard flow in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(deps, cfg, "local"), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
