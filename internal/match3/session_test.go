package match3

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionForwardsInput(t *testing.T) {
	e, st := loadScenario(t, newScripted(3, 1, 3), testLevel(20, 1000))
	s := ResumeSession(e, st)

	var seen []Event
	s.Subscribe(func(ev Event) { seen = append(seen, ev) })

	events := s.HandleSwipe(2, DirDown)
	assert.Equal(t, events, seen)
	snap := s.Snapshot()
	assert.Equal(t, 30, snap.Score)
	assert.Equal(t, 19, snap.MovesRemaining)
	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, "test", snap.LevelID)

	assert.Nil(t, s.HandleTap(-5))
	assert.Equal(t, snap, s.Snapshot())
}

func TestSessionRestart(t *testing.T) {
	e := NewEngine(Options{Rand: NewRandom(5)})
	s, err := NewSession(e, LevelConfig{ID: "one", Moves: 3, TargetProgress: 1 << 20})
	require.NoError(t, err)

	for s.Snapshot().Outcome == OutcomeInProgress {
		mv, ok := FindHint(s.Snapshot().Board())
		require.True(t, ok)
		s.HandleTap(mv.A)
		s.HandleTap(mv.B)
	}
	require.Equal(t, OutcomeLost, s.Snapshot().Outcome)

	events := s.AddMoves(2)
	require.NotEmpty(t, events)
	assert.Equal(t, OutcomeInProgress, s.Snapshot().Outcome)
	assert.Equal(t, 2, s.Snapshot().MovesRemaining)

	_, err = s.Restart()
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 3, snap.MovesRemaining)
	assert.Equal(t, 0, snap.MovesUsed)
	assert.False(t, HasMatch(snap.Board()))
}

func TestNewSessionRejectsInvalidLevel(t *testing.T) {
	_, err := NewSession(NewEngine(Options{}), LevelConfig{ID: "bad"})
	assert.Error(t, err)
}

func TestSessionSnapshotsAreCopies(t *testing.T) {
	e, st := loadScenario(t, NewRandom(1), testLevel(20, 1000))
	s := ResumeSession(e, st)

	snap := s.Snapshot()
	snap.Cells[0].Kind = KindRock
	assert.NotEqual(t, KindRock, s.Snapshot().Cells[0].Kind)
}

func TestSessionConcurrentInput(t *testing.T) {
	e := NewEngine(Options{Rand: NewRandom(11)})
	s, err := NewSession(e, LevelConfig{ID: "race", Moves: 50, TargetProgress: 1 << 20})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				s.HandleTap((w*17 + i*5) % 64)
				_ = s.Snapshot()
			}
		}(w)
	}
	wg.Wait()
	assert.False(t, HasMatch(s.Snapshot().Board()))
}
