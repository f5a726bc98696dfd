package trackers

import "github.com/lukev/hanabi-analyzer/internal/engine"

// All returns the three state trackers in their required registration order:
// clue history, then pending finesses, then the early-game flag
// (spec.md §2 component 5).
func All() []engine.Tracker {
	return []engine.Tracker{
		ClueHistoryTracker{},
		PendingFinesseTracker{},
		EarlyGameTracker{},
	}
}
