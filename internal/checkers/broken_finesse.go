package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// BrokenFinesseChecker flags a blind play from finesse position that turns
// out not to be playable (spec.md §4.4.2).
type BrokenFinesseChecker struct{}

func (BrokenFinesseChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (BrokenFinesseChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Play }

func (BrokenFinesseChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	card := hand[idx]
	if card.Clue.IsClued() {
		return
	}

	finessePos, ok := analysis.FinessePositionIndex(hand)
	if !ok || finessePos != idx {
		return
	}
	if analysis.IsPlayable(card.Card(), ctx.StateBefore) {
		return
	}

	c := card.Card()
	ctx.Emit(model.BrokenFinesse, ctx.CurrentPlayer, model.Warning,
		fmt.Sprintf("blind-played %s from finesse position, not playable", c), &c)
}
