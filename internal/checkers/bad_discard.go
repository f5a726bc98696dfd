package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// BadDiscardChecker flags a discarded 5 whose stack hasn't finished, or a
// discarded last copy of a still-needed card (spec.md §4.4.1).
type BadDiscardChecker struct{}

func (BadDiscardChecker) Level() model.ConventionLevel { return model.L0_Basic }

func (BadDiscardChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (BadDiscardChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	card := ctx.StateBefore.Hands[ctx.CurrentPlayer][idx].Card()

	if card.Rank == 5 && ctx.StateBefore.PlayStacks[card.Suit] < 5 {
		ctx.Emit(model.BadDiscard5, ctx.CurrentPlayer, model.Critical,
			fmt.Sprintf("discarded %s before its stack was finished", card), &card)
		return
	}

	if analysis.IsLastCopy(card, ctx.StateBefore, ctx.Game) &&
		ctx.StateBefore.PlayStacks[card.Suit] < card.Rank &&
		!analysis.IsSuitDead(card.Suit, card.Rank, ctx.StateBefore) {
		ctx.Emit(model.BadDiscardCritical, ctx.CurrentPlayer, model.Critical,
			fmt.Sprintf("discarded the last copy of %s", card), &card)
	}
}
