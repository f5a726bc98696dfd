package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// DoubleDiscardAvoidanceChecker flags a chop discard of a non-trash card that
// immediately follows another player's chop discard of a non-trash card,
// when the actor wasn't forced to discard (spec.md §4.4.3).
type DoubleDiscardAvoidanceChecker struct{}

func (DoubleDiscardAvoidanceChecker) Level() model.ConventionLevel { return model.L2_Intermediate }

func (DoubleDiscardAvoidanceChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (DoubleDiscardAvoidanceChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.ActionIndex == 0 {
		return
	}
	prevAction, ok := ctx.ActionAt(ctx.ActionIndex - 1)
	if !ok || prevAction.Kind != model.Discard {
		return
	}
	prevPlayer := ctx.PlayerAt(ctx.ActionIndex - 1)
	prevState := ctx.States[ctx.ActionIndex-1]
	prevHand := prevState.Hands[prevPlayer]
	prevChopIdx, ok := analysis.ChopIndex(prevHand)
	if !ok || prevHand[prevChopIdx].DeckIndex != prevAction.Target {
		return
	}
	prevCard := prevHand[prevChopIdx].Card()
	if analysis.IsTrash(prevCard, prevState) {
		return
	}

	curHand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	curChopIdx, ok := analysis.ChopIndex(curHand)
	if !ok || curHand[curChopIdx].DeckIndex != ctx.Action.Target {
		return
	}
	curCard := curHand[curChopIdx].Card()
	if analysis.IsTrash(curCard, ctx.StateBefore) {
		return
	}

	forced := ctx.StateBefore.ClueTokens == 0 && !analysis.AnyPlayable(curHand, ctx.StateBefore)
	if forced {
		return
	}

	ctx.Emit(model.DoubleDiscardAvoidance, ctx.CurrentPlayer, model.Warning,
		fmt.Sprintf("discarded from chop right after %s's chop discard, without being forced", ctx.PlayerName(prevPlayer)), &curCard)
}
