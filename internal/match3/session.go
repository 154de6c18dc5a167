package match3

import "sync"

// Session owns the state of one level being played and serializes input
// against it. Hosts call the Handle methods and read snapshots; they never
// see State mutate underneath them.
type Session struct {
	mu     sync.Mutex
	engine *Engine
	level  LevelConfig
	state  State
	subs   []func(Event)
}

// NewSession initializes level on engine.
func NewSession(engine *Engine, level LevelConfig) (*Session, error) {
	st, _, err := engine.Initialize(level)
	if err != nil {
		return nil, err
	}
	return &Session{engine: engine, level: level, state: st}, nil
}

// ResumeSession wraps an existing state, for example one built with Engine.Load.
func ResumeSession(engine *Engine, st State) *Session {
	return &Session{engine: engine, level: st.Level, state: st.Clone()}
}

// Subscribe registers fn to receive every event emitted from now on.
// Callbacks run on the caller's goroutine, after the session lock is released.
func (s *Session) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// HandleTap forwards a tap on cell i.
func (s *Session) HandleTap(i int) []Event {
	return s.apply(Tap{Index: i})
}

// HandleSwipe forwards a swipe from cell i in direction d.
func (s *Session) HandleSwipe(i int, d Direction) []Event {
	return s.apply(Swipe{From: i, Dir: d})
}

// AddMoves grants extra moves, reviving a lost level.
func (s *Session) AddMoves(n int) []Event {
	return s.apply(AddMoves{Count: n})
}

// Restart regenerates the board and resets score, moves and outcome.
func (s *Session) Restart() ([]Event, error) {
	s.mu.Lock()
	st, events, err := s.engine.Initialize(s.level)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.state = st
	subs := s.subs
	s.mu.Unlock()

	notify(subs, events)
	return events, nil
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// State returns a deep copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Level returns the level being played.
func (s *Session) Level() LevelConfig {
	return s.level
}

func (s *Session) apply(in Input) []Event {
	s.mu.Lock()
	next, events := s.engine.Apply(s.state, in)
	s.state = next
	subs := s.subs
	s.mu.Unlock()

	notify(subs, events)
	return events
}

func notify(subs []func(Event), events []Event) {
	for _, ev := range events {
		for _, fn := range subs {
			fn(ev)
		}
	}
}
