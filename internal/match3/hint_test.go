package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deadlockRows has no match and no swap that makes one.
var deadlockRows = []string{
	"ACACAC",
	"BDBDBD",
	"CACACA",
	"DBDBDB",
	"ACACAC",
	"BDBDBD",
}

func TestFindHint(t *testing.T) {
	b := MustParseBoard(scenarioRows...)
	mv, ok := FindHint(b)
	require.True(t, ok)
	assert.True(t, b.Grid.Adjacent(mv.A, mv.B))
	assert.Positive(t, EvaluateMove(b, mv))
	assert.Contains(t, PossibleMoves(b), Move{A: 2, B: 10})
	assert.Equal(t, 3, EvaluateMove(b, Move{A: 2, B: 10}))

	// Probing must not disturb the board.
	assert.True(t, b.Equal(MustParseBoard(scenarioRows...)))
}

func TestEvaluateMoveRejectsIllegal(t *testing.T) {
	b := MustParseBoard(scenarioRows...)
	assert.Zero(t, EvaluateMove(b, Move{A: 3, B: 4}), "no match")
	assert.Zero(t, EvaluateMove(b, Move{A: 0, B: 9}), "diagonal")
}

func TestDeadlockDetection(t *testing.T) {
	b := MustParseBoard(deadlockRows...)
	require.False(t, HasMatch(b))
	assert.False(t, HasPossibleMove(b))
	assert.Empty(t, PossibleMoves(b))
}

func TestShuffleBoardFindsPlayableArrangement(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b := MustParseBoard(deadlockRows...)
		ok := shuffleBoard(&b, PlayableKinds(4), NewRandom(seed), 100)
		require.True(t, ok, "seed %d", seed)
		assert.False(t, HasMatch(b), "seed %d:\n%s", seed, b)
		assert.True(t, HasPossibleMove(b), "seed %d", seed)

		ids := make(map[uint64]bool)
		for i, c := range b.Cells {
			assert.Equal(t, i, c.Index)
			ids[c.ID] = true
		}
		assert.Len(t, ids, 36, "shuffling keeps every cell")
	}
}

func TestShuffleBoardLeavesFixedCells(t *testing.T) {
	b := MustParseBoard(
		"#CACAC",
		"BdBDBD",
		"CACACA",
		"DBDBDB",
		"ACACAC",
		"BDBDB#",
	)
	shuffleBoard(&b, PlayableKinds(4), NewRandom(3), 100)
	assert.Equal(t, KindRock, b.Cells[0].Kind)
	assert.Equal(t, KindRock, b.Cells[35].Kind)
	assert.True(t, b.Cells[7].Locked)
	assert.Equal(t, KindGreen, b.Cells[7].Kind)
	assert.Equal(t, uint64(8), b.Cells[7].ID)
}
