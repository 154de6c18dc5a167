// Package registry provides a global registry for autoplay strategies.
// Strategies register themselves in init() functions, allowing the CLI and
// tests to look them up by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Strategy picks the next swap for an autoplayer.
// Strategies see only snapshots, never engine state.
type Strategy interface {
	// ID returns a unique identifier (e.g., "greedy").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Choose returns the swap to play on snap, or false when the strategy
	// finds nothing to play.
	Choose(snap match3.Snapshot, rnd match3.RandomSource) (match3.Move, bool)
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory creates a new strategy instance.
type Factory func() Strategy

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a strategy by its ID.
func Create(id string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
