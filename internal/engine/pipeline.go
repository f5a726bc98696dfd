package engine

import "github.com/lukev/hanabi-analyzer/internal/model"

// Checker is a stateless rule check that reads the context and appends
// violations. Each declares the lowest ConventionLevel at which it activates
// and which action kinds it applies to (spec.md §4.4).
type Checker interface {
	Level() model.ConventionLevel
	AppliesTo(kind model.ActionKind) bool
	Check(ctx *AnalysisContext)
}

// Tracker accumulates cross-turn memory onto the context (spec.md §4.5).
type Tracker interface {
	AppliesTo(kind model.ActionKind) bool
	Track(ctx *AnalysisContext)
}

// KindSet is a small applicability helper for checkers/trackers that apply
// to a fixed set of action kinds.
type KindSet map[model.ActionKind]bool

// Kinds builds a KindSet from the given action kinds.
func Kinds(kinds ...model.ActionKind) KindSet {
	set := make(KindSet, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

// Contains reports whether kind is in the set.
func (s KindSet) Contains(kind model.ActionKind) bool {
	return s[kind]
}

// AnyKind matches every action kind. The checkers/trackers that apply to
// "any" action (MissedSaveChecker, FixClueChecker, PendingFinesseTracker)
// return true from AppliesTo directly rather than consulting it.
type anyKind struct{}

func (anyKind) Contains(model.ActionKind) bool { return true }

// AnyKind is the shared AppliesTo-everything applicability set.
var AnyKind = anyKind{}
