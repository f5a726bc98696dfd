package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// InformationLockChecker flags discarding a card whose own clue marks fully
// determine its identity and that identity is currently playable
// (spec.md §4.4.4).
type InformationLockChecker struct{}

func (InformationLockChecker) Level() model.ConventionLevel { return model.L3_Advanced }

func (InformationLockChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (InformationLockChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	card := ctx.StateBefore.Hands[ctx.CurrentPlayer][idx]
	if !(card.Clue.HasColorMark() && card.Clue.HasRankMark()) {
		return
	}
	if !analysis.IsPlayable(card.Card(), ctx.StateBefore) {
		return
	}

	c := card.Card()
	ctx.Emit(model.InformationLock, ctx.CurrentPlayer, model.Warning,
		fmt.Sprintf("discarded fully-known playable %s", c), &c)
}
