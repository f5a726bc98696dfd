package checkers

import (
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// findLastClueTouching returns the most recent clue entry (strictly before
// the current action) that targeted player and touched deckIndex.
func findLastClueTouching(ctx *engine.AnalysisContext, player, deckIndex int) *model.ClueHistoryEntry {
	var last *model.ClueHistoryEntry
	for i := range ctx.ClueHistory {
		e := &ctx.ClueHistory[i]
		if e.Target != player {
			continue
		}
		for _, di := range e.TouchedDeckIndices {
			if di == deckIndex {
				last = e
			}
		}
	}
	return last
}

// nextTurnIndexFor returns the smallest action index strictly after
// ctx.ActionIndex at which player is next to act.
func nextTurnIndexFor(ctx *engine.AnalysisContext, player int) int {
	n := ctx.Game.NumPlayers()
	next := ctx.ActionIndex + 1
	for next%n != player {
		next++
	}
	return next
}
