package trackers

import (
	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// ClueHistoryTracker appends a ClueHistoryEntry with the touched deck
// indices and the computed focus for every clue action (spec.md §4.5).
type ClueHistoryTracker struct{}

func (ClueHistoryTracker) AppliesTo(kind model.ActionKind) bool {
	return kind.IsClue()
}

func (ClueHistoryTracker) Track(ctx *engine.AnalysisContext) {
	if ctx.Action.Target == ctx.CurrentPlayer {
		// Self-clues are silently ignored by the simulator; nothing to record.
		return
	}

	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	touchedIdx := analysis.TouchedBy(handBefore, ctx.Action)

	deckIndices := make([]int, len(touchedIdx))
	for i, idx := range touchedIdx {
		deckIndices[i] = handBefore[idx].DeckIndex
	}

	entry := model.ClueHistoryEntry{
		Turn:               ctx.Turn,
		Giver:              ctx.CurrentPlayer,
		Target:             ctx.Action.Target,
		ClueKind:           ctx.Action.Kind,
		ClueValue:          ctx.Action.Value,
		TouchedDeckIndices: deckIndices,
	}

	if focusHandIdx, ok := analysis.FocusOf(handBefore, ctx.Action); ok {
		deckIdx := handBefore[focusHandIdx].DeckIndex
		entry.FocusDeckIndex = &deckIdx
	}
	if chopHandIdx, ok := analysis.ChopIndex(handBefore); ok {
		deckIdx := handBefore[chopHandIdx].DeckIndex
		entry.ChopDeckIndex = &deckIdx
	}

	ctx.ClueHistory = append(ctx.ClueHistory, entry)
}
