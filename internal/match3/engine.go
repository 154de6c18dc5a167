package match3

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Input is one of Tap, Swipe or AddMoves.
type Input interface {
	isInput()
}

// Tap selects, deselects or swaps depending on the current selection.
type Tap struct {
	Index int
}

// Swipe swaps the cell at From with its neighbour in Dir.
type Swipe struct {
	From int
	Dir  Direction
}

// AddMoves grants extra moves and reopens a lost level.
type AddMoves struct {
	Count int
}

func (Tap) isInput()      {}
func (Swipe) isInput()    {}
func (AddMoves) isInput() {}

// Options configures an Engine.
type Options struct {
	Grid   Grid         // zero value means DefaultSize
	Rules  Rules        // zero fields take DefaultRules values
	Rand   RandomSource // required
	Logger *log.Logger  // nil discards
}

// Engine runs the match-3 rules over caller-owned State values.
// It keeps no per-level state of its own, only its random source.
// An Engine is not safe for concurrent use; wrap it in a Session for that.
type Engine struct {
	grid  Grid
	rules Rules
	rand  RandomSource
	log   *log.Logger
}

// NewEngine creates an engine.
func NewEngine(opts Options) *Engine {
	if opts.Grid.N <= 0 {
		opts.Grid = NewGrid(DefaultSize)
	}
	if opts.Rand == nil {
		opts.Rand = NewRandom(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Engine{
		grid:  opts.Grid,
		rules: opts.Rules.withDefaults(),
		rand:  opts.Rand,
		log:   opts.Logger,
	}
}

// Grid returns the board geometry.
func (e *Engine) Grid() Grid { return e.grid }

// Rules returns the active rule set.
func (e *Engine) Rules() Rules { return e.rules }

// Initialize builds a fresh state for level: a generated board, full move
// budget, zero score. Any match left by generator exhaustion is resolved
// without scoring before the first snapshot.
func (e *Engine) Initialize(level LevelConfig) (State, []Event, error) {
	if err := level.Validate(e.grid); err != nil {
		return State{}, nil, fmt.Errorf("match3: initialize level: %w", err)
	}
	kinds := PlayableKinds(level.KindCount(e.rules))

	board, stats := Generate(e.grid, level.Layout, GenOptions{
		Kinds:   kinds,
		Retries: e.rules.GeneratorRetries,
		Rand:    e.rand,
	})
	if stats.Exhausted > 0 {
		e.log.Debug("generator retries exhausted", "level", level.ID, "cells", stats.Exhausted)
	}

	s := State{
		Level:          level,
		Board:          board,
		Phase:          PhaseIdle,
		SelectedIndex:  NoSelection,
		MovesRemaining: level.Moves,
		NextID:         stats.NextID,
	}
	e.stabilize(&s, kinds)

	var events []Event
	if !HasPossibleMove(s.Board) {
		e.reshuffle(&s, kinds, ShuffleDeadlock, &events)
	}
	events = append(events, PhaseEvent{Snapshot: s.Snapshot()})
	return s, events, nil
}

// Load builds a state for level around an existing board, for replays,
// puzzles and tests. The board must be settled and fully populated.
func (e *Engine) Load(level LevelConfig, b Board) (State, error) {
	if err := level.Validate(b.Grid); err != nil {
		return State{}, fmt.Errorf("match3: load level: %w", err)
	}
	if len(b.Cells) != b.Grid.Len() {
		return State{}, fmt.Errorf("match3: load level %s: board has %d cells, want %d", level.ID, len(b.Cells), b.Grid.Len())
	}
	for _, c := range b.Cells {
		if c.IsEmpty() {
			return State{}, fmt.Errorf("match3: load level %s: empty slot at %d", level.ID, c.Index)
		}
	}
	if HasMatch(b) {
		return State{}, &ConfigError{
			Code:    "UNSETTLED",
			Message: fmt.Sprintf("level %s: board already contains a match", level.ID),
		}
	}
	board := b.Clone()
	for i := range board.Cells {
		board.Cells[i].Index = i
		board.Cells[i].Selected = false
		board.Cells[i].Matched = false
	}
	return State{
		Level:          level,
		Board:          board,
		Phase:          PhaseIdle,
		SelectedIndex:  NoSelection,
		MovesRemaining: level.Moves,
		NextID:         board.maxID() + 1,
	}, nil
}

// Apply processes one input and returns the resulting state together with
// the events emitted along the way. s is not modified. Inputs that are not
// legal in the current state return s unchanged and no events.
func (e *Engine) Apply(s State, in Input) (State, []Event) {
	switch in := in.(type) {
	case Tap:
		return e.tap(s, in.Index)
	case Swipe:
		return e.swipe(s, in.From, in.Dir)
	case AddMoves:
		return e.addMoves(s, in.Count)
	default:
		return s, nil
	}
}

func (e *Engine) tap(s State, i int) (State, []Event) {
	if !s.Accepting() || !s.Board.Grid.IsValidIndex(i) || !s.Board.Cells[i].Movable() {
		return s, nil
	}
	next := s.Clone()
	var events []Event

	sel := next.SelectedIndex
	switch {
	case sel == NoSelection:
		next.selectCell(i)
		events = append(events, SelectionEvent{Index: i})
	case sel == i:
		next.clearSelection()
		events = append(events, SelectionEvent{Index: NoSelection})
	case next.Board.Grid.Adjacent(sel, i):
		next.clearSelection()
		events = append(events, SelectionEvent{Index: NoSelection})
		e.swap(&next, sel, i, &events)
		return next, events
	default:
		next.selectCell(i)
		events = append(events, SelectionEvent{Index: i})
	}
	events = append(events, PhaseEvent{Snapshot: next.Snapshot()})
	return next, events
}

func (e *Engine) swipe(s State, from int, d Direction) (State, []Event) {
	if !s.Accepting() || !s.Board.Grid.IsValidIndex(from) || !s.Board.Cells[from].Movable() {
		return s, nil
	}
	to, ok := s.Board.Grid.Neighbor(from, d)
	if !ok || !s.Board.Cells[to].Movable() {
		return s, nil
	}
	next := s.Clone()
	var events []Event
	if next.SelectedIndex != NoSelection {
		next.clearSelection()
		events = append(events, SelectionEvent{Index: NoSelection})
	}
	e.swap(&next, from, to, &events)
	return next, events
}

func (e *Engine) addMoves(s State, count int) (State, []Event) {
	if count <= 0 || s.Phase != PhaseIdle {
		return s, nil
	}
	next := s.Clone()
	next.MovesRemaining += count
	events := []Event{MovesAddedEvent{Count: count, MovesRemaining: next.MovesRemaining}}
	if next.Outcome == OutcomeLost {
		next.Outcome = OutcomeInProgress
		events = append(events, OutcomeEvent{Outcome: OutcomeInProgress})
		if !HasPossibleMove(next.Board) {
			e.reshuffle(&next, PlayableKinds(next.Level.KindCount(e.rules)), ShuffleDeadlock, &events)
		}
	}
	events = append(events, PhaseEvent{Snapshot: next.Snapshot()})
	return next, events
}

// swap runs the Swapping phase and, on a hit, the whole cascade.
func (e *Engine) swap(s *State, a, b int, events *[]Event) {
	s.Phase = PhaseSwapping
	s.Board.swap(a, b)
	groups := FindMatches(s.Board)
	if len(groups) == 0 {
		*events = append(*events,
			SwapEvent{A: a, B: b, Valid: false},
			PhaseEvent{Snapshot: s.Snapshot()},
		)
		s.Board.swap(a, b)
		s.Phase = PhaseIdle
		s.Combo = 0
		*events = append(*events, PhaseEvent{Snapshot: s.Snapshot()})
		return
	}

	s.MovesRemaining--
	s.MovesUsed++
	s.Combo = 0
	*events = append(*events,
		SwapEvent{A: a, B: b, Valid: true},
		PhaseEvent{Snapshot: s.Snapshot()},
	)
	e.cascade(s, groups, events)
}

// cascade loops Matching, Falling and Refilling until detection comes back
// empty, then settles the state to Idle.
func (e *Engine) cascade(s *State, groups []MatchGroup, events *[]Event) {
	kinds := PlayableKinds(s.Level.KindCount(e.rules))
	for depth := 1; len(groups) > 0; depth++ {
		s.Phase = PhaseMatching
		if depth > e.rules.MaxCascadeDepth {
			e.log.Warn("cascade depth limit reached", "level", s.Level.ID, "depth", depth)
			rerollSettled(&s.Board, kinds, e.rand)
			*events = append(*events, ShuffleEvent{Reason: ShuffleCascadeLimit})
			break
		}

		matched := markMatched(&s.Board, groups)
		points := e.rules.StepPoints(len(matched), depth)
		s.Combo = depth
		s.MaxCombo = max(s.MaxCombo, depth)
		s.Score += points
		won := s.checkWin()
		unlocked := unlockAdjacent(&s.Board, matched)

		*events = append(*events,
			MatchEvent{Groups: groups, Indices: matched, Points: points, Depth: depth, Unlocked: unlocked},
			PhaseEvent{Snapshot: s.Snapshot()},
		)
		if won {
			*events = append(*events, OutcomeEvent{Outcome: OutcomeWon})
		}

		s.Phase = PhaseFalling
		fall := ApplyGravity(&s.Board)
		*events = append(*events,
			FallEvent{Falls: fall.Falls, Vacated: fall.Vacated},
			PhaseEvent{Snapshot: s.Snapshot()},
		)

		s.Phase = PhaseRefilling
		spawned := Refill(&s.Board, kinds, e.rand, &s.NextID)
		*events = append(*events,
			RefillEvent{Spawned: spawned},
			PhaseEvent{Snapshot: s.Snapshot()},
		)

		groups = FindMatches(s.Board)
	}

	s.Phase = PhaseIdle
	if s.checkLoss() {
		*events = append(*events, OutcomeEvent{Outcome: OutcomeLost})
	}
	if s.Outcome == OutcomeInProgress && !HasPossibleMove(s.Board) {
		e.reshuffle(s, kinds, ShuffleDeadlock, events)
	}
	e.log.Debug("cascade settled", "level", s.Level.ID, "combo", s.Combo, "score", s.Score, "moves", s.MovesRemaining)
	*events = append(*events, PhaseEvent{Snapshot: s.Snapshot()})
}

// stabilize clears matches without scoring. Used right after generation.
func (e *Engine) stabilize(s *State, kinds []Kind) {
	for step := 0; step < e.rules.MaxCascadeDepth; step++ {
		groups := FindMatches(s.Board)
		if len(groups) == 0 {
			return
		}
		markMatched(&s.Board, groups)
		ApplyGravity(&s.Board)
		Refill(&s.Board, kinds, e.rand, &s.NextID)
	}
	if HasMatch(s.Board) {
		rerollSettled(&s.Board, kinds, e.rand)
	}
}

func (e *Engine) reshuffle(s *State, kinds []Kind, reason ShuffleReason, events *[]Event) {
	ok := shuffleBoard(&s.Board, kinds, e.rand, e.rules.ShuffleAttempts)
	e.log.Debug("board reshuffled", "level", s.Level.ID, "reason", reason, "playable", ok)
	*events = append(*events, ShuffleEvent{Reason: reason})
}

// markMatched flags every grouped cell and returns the indices, ascending.
func markMatched(b *Board, groups []MatchGroup) []int {
	var out []int
	for _, g := range groups {
		for _, i := range g.Indices {
			b.Cells[i].Matched = true
		}
	}
	for i, c := range b.Cells {
		if c.Matched {
			out = append(out, i)
		}
	}
	return out
}

// unlockAdjacent frees locked cells orthogonally next to a matched cell.
func unlockAdjacent(b *Board, matched []int) []int {
	var out []int
	for _, i := range matched {
		for _, n := range b.Grid.Neighbors(i) {
			if b.Cells[n].Locked {
				b.Cells[n].Locked = false
				out = append(out, n)
			}
		}
	}
	slices.Sort(out)
	return out
}
