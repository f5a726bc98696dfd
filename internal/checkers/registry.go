package checkers

import "github.com/lukev/hanabi-analyzer/internal/engine"

// All returns every checker in its fixed registration order, grouped by
// convention level: L0, then L1, then L2, then L3 (spec.md §4.3).
func All() []engine.Checker {
	return []engine.Checker{
		// L0
		MisplayChecker{},
		BadDiscardChecker{},
		IllegalDiscardChecker{},
		// L1
		GoodTouchChecker{},
		MCVPChecker{},
		MissedSaveChecker{},
		MissedPromptChecker{},
		FinesseSetupChecker{},
		BrokenFinesseChecker{},
		// L2
		DoubleDiscardAvoidanceChecker{},
		FiveStallChecker{},
		StompedFinesseChecker{},
		WrongPromptChecker{},
		// L3
		PlayingMultipleOnesChecker{},
		InformationLockChecker{},
		SarcasticDiscardChecker{},
		FixClueChecker{},
		MisplayCostChecker{},
	}
}
