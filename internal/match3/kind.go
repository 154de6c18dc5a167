package match3

import "fmt"

// Kind identifies the element type of a cell. Only cells of the same
// playable kind can match each other.
type Kind uint8

const (
	KindNone Kind = iota // vacated slot, only seen between Falling and Refilling
	KindRed
	KindOrange
	KindYellow
	KindGreen
	KindBlue
	KindPurple
	KindRock // immovable obstacle, never matches
)

const (
	// MinKinds and MaxKinds bound how many playable kinds a level may activate.
	MinKinds = 4
	MaxKinds = 6
)

var kindNames = [...]string{
	KindNone:   "none",
	KindRed:    "red",
	KindOrange: "orange",
	KindYellow: "yellow",
	KindGreen:  "green",
	KindBlue:   "blue",
	KindPurple: "purple",
	KindRock:   "rock",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Playable reports whether k is one of the matchable element kinds.
func (k Kind) Playable() bool {
	return k >= KindRed && k <= KindPurple
}

// Letter returns the single-character board notation for k.
// Playable kinds are 'A'..'F', rocks are '#', empty slots are '.'.
func (k Kind) Letter() byte {
	switch {
	case k.Playable():
		return 'A' + byte(k-KindRed)
	case k == KindRock:
		return '#'
	default:
		return '.'
	}
}

// PlayableKinds returns the first n playable kinds, clamped to
// [MinKinds, MaxKinds].
func PlayableKinds(n int) []Kind {
	n = max(MinKinds, min(n, MaxKinds))
	kinds := make([]Kind, n)
	for i := range kinds {
		kinds[i] = KindRed + Kind(i)
	}
	return kinds
}
