package match3

// Event is emitted by the engine while it processes an input.
// The set of events is closed; hosts type-switch over them.
type Event interface {
	isEvent()
}

// PhaseEvent carries the state after a phase completed.
type PhaseEvent struct {
	Snapshot Snapshot
}

// SelectionEvent reports a selection change. Index is NoSelection when cleared.
type SelectionEvent struct {
	Index int
}

// SwapEvent reports an attempted swap. Invalid swaps are reverted.
type SwapEvent struct {
	A, B  int
	Valid bool
}

// MatchEvent describes one resolved cascade step. It is what particle,
// sound and haptic collaborators consume.
type MatchEvent struct {
	Groups   []MatchGroup
	Indices  []int // all matched indices, ascending
	Points   int
	Depth    int   // 1-indexed cascade depth
	Unlocked []int // locked cells freed by this step
}

// FallEvent lists the cells moved by gravity.
type FallEvent struct {
	Falls   []Fall
	Vacated []int
}

// RefillEvent lists the slots that received new cells.
type RefillEvent struct {
	Spawned []int
}

// OutcomeEvent reports a change of level outcome.
type OutcomeEvent struct {
	Outcome Outcome
}

// ShuffleReason says why the board was rearranged.
type ShuffleReason uint8

const (
	ShuffleDeadlock     ShuffleReason = iota // no legal move left
	ShuffleCascadeLimit                      // cascade hit MaxCascadeDepth
)

// String returns the reason name.
func (r ShuffleReason) String() string {
	if r == ShuffleCascadeLimit {
		return "cascade_limit"
	}
	return "deadlock"
}

// ShuffleEvent reports that the board was rearranged without player input.
type ShuffleEvent struct {
	Reason ShuffleReason
}

// MovesAddedEvent reports a revive or bonus.
type MovesAddedEvent struct {
	Count          int
	MovesRemaining int
}

func (PhaseEvent) isEvent()      {}
func (SelectionEvent) isEvent()  {}
func (SwapEvent) isEvent()       {}
func (MatchEvent) isEvent()      {}
func (FallEvent) isEvent()       {}
func (RefillEvent) isEvent()     {}
func (OutcomeEvent) isEvent()    {}
func (ShuffleEvent) isEvent()    {}
func (MovesAddedEvent) isEvent() {}

// Snapshots extracts the phase snapshots from events, in order.
func Snapshots(events []Event) []Snapshot {
	var out []Snapshot
	for _, ev := range events {
		if pe, ok := ev.(PhaseEvent); ok {
			out = append(out, pe.Snapshot)
		}
	}
	return out
}
