package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constRand always returns the same draw.
type constRand int

func (c constRand) IntN(n int) int { return int(c) % n }

// scriptedRand replays fixed draws, then falls back to a seeded source.
type scriptedRand struct {
	vals     []int
	fallback RandomSource
}

func newScripted(vals ...int) *scriptedRand {
	return &scriptedRand{vals: vals, fallback: NewRandom(1)}
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.vals) > 0 {
		v := s.vals[0]
		s.vals = s.vals[1:]
		return v % n
	}
	return s.fallback.IntN(n)
}

func testLayout() Layout {
	return Layout{
		0: OverrideRock, 7: OverrideRock, 56: OverrideRock, 63: OverrideRock,
		27: OverrideLock, 28: OverrideLock, 35: OverrideLock, 36: OverrideLock,
	}
}

func TestGenerateHasNoRuns(t *testing.T) {
	g := NewGrid(DefaultSize)
	layouts := map[string]Layout{
		"plain":   nil,
		"blocked": testLayout(),
	}
	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			for seed := uint64(1); seed <= 200; seed++ {
				for _, kinds := range []int{4, 5, 6} {
					b, stats := Generate(g, layout, GenOptions{
						Kinds: PlayableKinds(kinds),
						Rand:  NewRandom(seed),
					})
					if stats.Exhausted == 0 {
						require.False(t, hasAnyRun(b), "seed %d kinds %d:\n%s", seed, kinds, b)
					}
				}
			}
		})
	}
}

// hasAnyRun checks for runs of three equal playable kinds, locked or not.
func hasAnyRun(b Board) bool {
	n := b.Grid.N
	same := func(i, j, k int) bool {
		ki := b.Cells[i].Kind
		return ki.Playable() && ki == b.Cells[j].Kind && ki == b.Cells[k].Kind
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			i := row*n + col
			if col+2 < n && same(i, i+1, i+2) {
				return true
			}
			if row+2 < n && same(i, i+n, i+2*n) {
				return true
			}
		}
	}
	return false
}

func TestGenerateHonoursLayout(t *testing.T) {
	g := NewGrid(DefaultSize)
	layout := testLayout()
	b, stats := Generate(g, layout, GenOptions{
		Kinds:  PlayableKinds(5),
		Rand:   NewRandom(42),
		NextID: 100,
	})

	assert.Equal(t, uint64(100+g.Len()), stats.NextID)
	for i, c := range b.Cells {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, uint64(100+i), c.ID)
		switch layout[i] {
		case OverrideRock:
			assert.Equal(t, KindRock, c.Kind, "index %d", i)
		case OverrideLock:
			assert.True(t, c.Locked, "index %d", i)
			assert.True(t, c.Kind.Playable(), "index %d", i)
		default:
			assert.False(t, c.Locked, "index %d", i)
			assert.True(t, c.Kind.Playable(), "index %d", i)
		}
	}
}

func TestGenerateIsTotalWhenRetriesRunOut(t *testing.T) {
	g := NewGrid(4)
	b, stats := Generate(g, nil, GenOptions{
		Kinds:   PlayableKinds(4),
		Retries: 3,
		Rand:    constRand(0),
	})

	// Every draw is red, so every cell from the third column or row on
	// exhausts its retries.
	assert.Equal(t, 12, stats.Exhausted)
	assert.Len(t, b.Cells, 16)
	assert.True(t, HasMatch(b))
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewGrid(DefaultSize)
	opts := func() GenOptions {
		return GenOptions{Kinds: PlayableKinds(5), Rand: NewRandom(7)}
	}
	a, _ := Generate(g, testLayout(), opts())
	b, _ := Generate(g, testLayout(), opts())
	assert.True(t, a.Equal(b))
}

func TestRerollSettledRemovesAllMatches(t *testing.T) {
	b := MustParseBoard(
		"AAAAA",
		"AAAAA",
		"AA#AA",
		"AAaAA",
		"AAAAA",
	)
	rerollSettled(&b, PlayableKinds(4), constRand(0))
	assert.False(t, HasMatch(b), "\n%s", b)
	assert.Equal(t, KindRock, b.Cells[12].Kind)
	assert.True(t, b.Cells[17].Locked)
}
