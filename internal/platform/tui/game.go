package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3"
	"github.com/vovakirdan/tui-match3/internal/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// GameModel plays one level. Engine phases are queued as snapshots and
// replayed one per PhaseDelay; input arriving during playback is dropped.
type GameModel struct {
	deps    Deps
	level   levels.Level
	session *match3.Session
	config  core.RuntimeConfig
	screen  *core.Screen
	palette Palette
	keys    *KeyMapper
	input   core.InputFrame

	view      match3.Snapshot   // what is on screen
	queue     []match3.Snapshot // phase snapshots awaiting playback
	nextFrame time.Time
	lastTick  time.Time
	cursor    int
	hint      *match3.Move
	status    string
	comboMax  int
	revives   int
	best      int
	saved     bool

	standalone bool // esc quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel starts level with the session's settings.
func NewGameModel(deps Deps, level levels.Level, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = deps.Config.Pacing.TickRate
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}

	m := GameModel{
		deps:    deps,
		config:  cfg,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette: NewPalette(deps.Config.ActiveTheme()),
		keys:    NewKeyMapper(),
		input:   core.NewInputFrame(),
	}
	if err := m.load(level); err != nil {
		return GameModel{}, err
	}
	return m, nil
}

// load replaces the session with a fresh one for level.
func (m *GameModel) load(level levels.Level) error {
	engine := match3.NewEngine(match3.Options{
		Rules:  m.deps.Config.EngineRules(),
		Rand:   match3.NewRandom(m.config.Seed),
		Logger: m.deps.logger(),
	})
	lc := config.ApplyDifficulty(level.LevelConfig, m.deps.Preset, m.deps.Config.Difficulty)
	session, err := match3.NewSession(engine, lc)
	if err != nil {
		return fmt.Errorf("tui: start level %s: %w", level.ID, err)
	}

	m.level = level
	m.session = session
	m.reset()
	m.best = m.deps.bestScore(level.ID)
	m.status = level.Tutorial
	m.deps.logger().Debug("level started", "level", level.ID, "moves", lc.Moves, "target", lc.TargetProgress)
	return nil
}

// reset clears per-run state after a new board was dealt.
func (m *GameModel) reset() {
	m.view = m.session.Snapshot()
	m.queue = nil
	n := m.view.Size
	m.cursor = (n/2)*n + n/2
	m.hint = nil
	m.status = ""
	m.comboMax = 0
	m.revives = 0
	m.saved = false
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		now := time.Time(msg)
		if now.Sub(m.lastTick) < m.tickInterval()/2 {
			// A stale tick chain from an earlier game; let it die.
			return m, nil
		}
		m.lastTick = now
		return m.handleTick(now)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}
	if m.input.Has(core.ActionBack) {
		m.input.Clear()
		m.finish()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleMouse turns a left click on a cell into a cursor move plus a pick.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.busy() {
		return
	}
	i, ok := cellAt(m.view.Size, msg.X, msg.Y)
	if !ok {
		return
	}
	m.cursor = i
	m.input.Set(core.ActionSelect)
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.busy() {
		// No input while the cascade is being shown.
		m.input.Clear()
		if !now.Before(m.nextFrame) {
			m.view, m.queue = m.queue[0], m.queue[1:]
			m.nextFrame = now.Add(m.deps.Config.PhaseDelay())
			if !m.busy() {
				m.settle()
			}
		}
		return m, tickCmd(m.config.TickRate)
	}
	if m.input.Empty() {
		return m, tickCmd(m.config.TickRate)
	}

	for _, a := range m.input.Actions {
		m.act(a)
		if m.busy() {
			m.nextFrame = now
			break
		}
	}
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) tickInterval() time.Duration {
	return time.Second / time.Duration(max(1, m.config.TickRate))
}

func (m *GameModel) busy() bool {
	return len(m.queue) > 0
}

// act applies one player action to the session.
func (m *GameModel) act(a core.Action) {
	n := m.view.Size
	switch {
	case a >= core.ActionUp && a <= core.ActionRight:
		dr, dc := a.CursorDelta()
		row := core.Clamp(m.cursor/n+dr, 0, n-1)
		col := core.Clamp(m.cursor%n+dc, 0, n-1)
		m.cursor = row*n + col
	case a == core.ActionSelect:
		m.absorb(m.session.HandleTap(m.cursor))
	case a.IsSwipe():
		if d, ok := swipeDirection(a); ok {
			m.absorb(m.session.HandleSwipe(m.cursor, d))
		}
	case a == core.ActionHint:
		if mv, ok := match3.FindHint(m.view.Board()); ok && m.view.Outcome == match3.OutcomeInProgress {
			m.hint = &mv
		}
	case a == core.ActionRevive:
		m.revive()
	case a == core.ActionRestart:
		m.finish()
		if _, err := m.session.Restart(); err != nil {
			m.status = err.Error()
			return
		}
		m.reset()
	case a == core.ActionNext:
		m.next()
	}
}

func (m *GameModel) revive() {
	if m.view.Outcome != match3.OutcomeLost || m.revivesLeft() == 0 {
		return
	}
	m.revives++
	m.absorb(m.session.AddMoves(m.deps.Config.EngineRules().ReviveMoves))
}

func (m *GameModel) next() {
	if m.view.Outcome != match3.OutcomeWon {
		return
	}
	nextLevel, ok := m.deps.Catalogue.Next(m.level.ID)
	if !ok {
		return
	}
	m.finish()
	if err := m.load(nextLevel); err != nil {
		m.status = err.Error()
	}
}

// absorb queues the phase snapshots of events and updates the HUD.
func (m *GameModel) absorb(events []match3.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case match3.PhaseEvent:
			m.queue = append(m.queue, ev.Snapshot)
		case match3.SwapEvent:
			m.hint = nil
			if !ev.Valid {
				m.status = "No match"
			} else {
				m.status = ""
			}
		case match3.MatchEvent:
			m.comboMax = max(m.comboMax, ev.Depth)
			if ev.Depth > 1 {
				m.status = fmt.Sprintf("Combo x%d!", ev.Depth)
			}
			if len(ev.Unlocked) > 0 {
				m.status = fmt.Sprintf("%d lock(s) broken", len(ev.Unlocked))
			}
		case match3.ShuffleEvent:
			if ev.Reason == match3.ShuffleDeadlock {
				m.status = "No moves left, board shuffled"
			}
		case match3.MovesAddedEvent:
			m.status = fmt.Sprintf("+%d moves", ev.Count)
		}
	}
	if m.deps.Config.PhaseDelay() == 0 && m.busy() {
		m.view = m.queue[len(m.queue)-1]
		m.queue = nil
		m.settle()
	}
}

// settle runs once playback has caught up with the session.
func (m *GameModel) settle() {
	m.view = m.session.Snapshot()
	switch m.view.Outcome {
	case match3.OutcomeWon:
		m.finish()
	case match3.OutcomeLost:
		if m.revivesLeft() == 0 {
			m.finish()
		}
	}
}

func (m *GameModel) revivesLeft() int {
	return max(0, m.deps.Config.Rules.MaxRevives-m.revives)
}

// finish stores the result of a decided level once.
func (m *GameModel) finish() {
	snap := m.session.Snapshot()
	if m.saved || snap.Outcome == match3.OutcomeInProgress {
		return
	}
	m.saved = true
	m.best = max(m.best, snap.Score)
	m.deps.logger().Info("level finished", "level", m.level.ID, "outcome", snap.Outcome,
		"score", snap.Score, "moves", snap.MovesUsed, "combo_max", m.comboMax)
	if m.deps.Store == nil {
		return
	}
	if _, err := m.deps.Store.SaveResult(storage.Result{
		LevelID:   m.level.ID,
		Outcome:   snap.Outcome,
		Score:     snap.Score,
		MovesUsed: snap.MovesUsed,
		ComboMax:  m.comboMax,
	}); err != nil {
		m.deps.logger().Error("could not save result", "level", m.level.ID, "error", err)
	}
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	_, canNext := m.deps.Catalogue.Next(m.level.ID)
	DrawGame(m.screen, GameView{
		Title:       fmt.Sprintf("MATCH-3  Level %d: %s", m.level.Order, m.level.Name),
		Snapshot:    m.view,
		Target:      m.session.Level().TargetProgress,
		Cursor:      m.cursor,
		Hint:        m.hint,
		Best:        m.best,
		RevivesLeft: m.revivesLeft(),
		CanNext:     canNext,
		Busy:        m.busy(),
		Status:      m.status,
	}, m.palette)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single level in the terminal.
func Run(deps Deps, level levels.Level, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(deps, level, cfg)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
