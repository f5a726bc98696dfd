package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// MissedSaveChecker flags an action that leaves a teammate's unclued chop
// needing a save untouched, unless clue tokens are exhausted or the actor
// played an unclued card of their own (spec.md §4.4.2).
type MissedSaveChecker struct{}

func (MissedSaveChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (MissedSaveChecker) AppliesTo(model.ActionKind) bool { return true }

func (MissedSaveChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.StateBefore.ClueTokens == 0 {
		return
	}

	for p, hand := range ctx.StateBefore.Hands {
		if p == ctx.CurrentPlayer {
			continue
		}
		chopIdx, ok := analysis.ChopIndex(hand)
		if !ok {
			continue
		}
		chop := hand[chopIdx]
		if chop.Clue.IsClued() {
			continue
		}
		if !analysis.NeedsSave(chop.Card(), chop.DeckIndex, ctx.StateBefore, ctx.Game, ctx.CurrentPlayer) {
			continue
		}

		if ctx.Action.Kind.IsClue() && ctx.Action.Target == p {
			touchesChop := false
			for _, idx := range analysis.TouchedBy(hand, ctx.Action) {
				if idx == chopIdx {
					touchesChop = true
				}
			}
			if touchesChop {
				continue
			}
		}

		if ctx.Action.Kind == model.Play {
			actorHand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
			if idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target); found && !actorHand[idx].Clue.IsClued() {
				continue
			}
		}

		card := chop.Card()
		ctx.Emit(model.MissedSave, ctx.CurrentPlayer, model.Warning,
			fmt.Sprintf("%s needed a save on %s at chop", ctx.PlayerName(p), card), &card)
	}
}
