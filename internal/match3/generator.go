package match3

// DefaultGeneratorRetries is the number of draws the generator makes per cell
// before accepting whatever it drew last.
const DefaultGeneratorRetries = 20

// GenOptions configures Generate.
type GenOptions struct {
	Kinds   []Kind       // active kinds to draw from
	Retries int          // draws per cell, <= 0 means DefaultGeneratorRetries
	Rand    RandomSource // kind source
	NextID  uint64       // first cell ID to assign
}

// GenStats reports what happened during generation.
type GenStats struct {
	Exhausted int    // cells where every retry completed a run
	NextID    uint64 // first unused cell ID
}

// Generate fills a fresh board in index order. Each non-rock cell is drawn
// until it does not complete a left-left or up-up same-kind pair. When the
// retry budget runs out the last draw is kept, so generation never fails;
// the resulting match is cleared by the next detection pass.
func Generate(g Grid, layout Layout, opts GenOptions) (Board, GenStats) {
	retries := opts.Retries
	if retries <= 0 {
		retries = DefaultGeneratorRetries
	}
	b := NewBoard(g)
	stats := GenStats{NextID: opts.NextID}
	if stats.NextID == 0 {
		stats.NextID = 1
	}

	for i := range b.Cells {
		c := &b.Cells[i]
		c.ID = stats.NextID
		stats.NextID++

		ov := layout[i]
		if ov == OverrideRock {
			c.Kind = KindRock
			continue
		}
		c.Locked = ov == OverrideLock

		var k Kind
		ok := false
		for attempt := 0; attempt < retries; attempt++ {
			k = drawKind(opts.Rand, opts.Kinds)
			if !completesRun(b, i, k) {
				ok = true
				break
			}
		}
		if !ok {
			stats.Exhausted++
		}
		c.Kind = k
	}
	return b, stats
}

// completesRun reports whether placing k at i would finish a run of three
// with the two cells before it in the same row or column.
func completesRun(b Board, i int, k Kind) bool {
	row, col := b.Grid.ToPosition(i)
	if col >= 2 && b.Cells[i-1].Kind == k && b.Cells[i-2].Kind == k {
		return true
	}
	n := b.Grid.N
	if row >= 2 && b.Cells[i-n].Kind == k && b.Cells[i-2*n].Kind == k {
		return true
	}
	return false
}

// rerollSettled redraws every movable cell in index order, excluding kinds
// that would complete a run with the cells before it. With three or more
// kinds a safe kind always exists, so the board ends without any match.
// Cells keep their IDs.
func rerollSettled(b *Board, kinds []Kind, r RandomSource) {
	n := b.Grid.N
	allowed := make([]Kind, 0, len(kinds))
	for i := range b.Cells {
		c := &b.Cells[i]
		if !c.Movable() {
			continue
		}
		row, col := b.Grid.ToPosition(i)
		allowed = allowed[:0]
		for _, k := range kinds {
			if col >= 2 && pairMatches(b.Cells[i-1], b.Cells[i-2], k) {
				continue
			}
			if row >= 2 && pairMatches(b.Cells[i-n], b.Cells[i-2*n], k) {
				continue
			}
			allowed = append(allowed, k)
		}
		if len(allowed) == 0 {
			c.Kind = drawKind(r, kinds)
			continue
		}
		c.Kind = allowed[r.IntN(len(allowed))]
	}
}

func pairMatches(a, b Cell, k Kind) bool {
	return a.Matchable() && b.Matchable() && a.Kind == k && b.Kind == k
}
