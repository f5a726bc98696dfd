package trackers

import (
	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// EarlyGameTracker flips ctx.IsEarlyGame to false the first time a player
// makes a non-forced chop discard, and it stays cleared thereafter
// (spec.md §4.5, §8).
type EarlyGameTracker struct{}

func (EarlyGameTracker) AppliesTo(kind model.ActionKind) bool {
	return kind == model.Discard
}

func (EarlyGameTracker) Track(ctx *engine.AnalysisContext) {
	if !ctx.IsEarlyGame {
		return
	}

	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	chopIdx, hasChop := analysis.ChopIndex(hand)
	if !hasChop || hand[chopIdx].DeckIndex != ctx.Action.Target {
		return
	}

	forced := ctx.StateBefore.ClueTokens == 0 && !anyPlayable(hand, ctx.StateBefore)
	if !forced {
		ctx.IsEarlyGame = false
	}
}

func anyPlayable(hand []model.CardInHand, state *model.GameState) bool {
	for _, c := range hand {
		if analysis.IsPlayable(c.Card(), state) {
			return true
		}
	}
	return false
}
