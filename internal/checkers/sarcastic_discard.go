package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// SarcasticDiscardChecker flags discarding a card while holding a different,
// fully-known card whose identity is duplicated by an already-clued card in
// another hand — the known duplicate should have been discarded sarcastically
// instead (spec.md §4.4.4).
type SarcasticDiscardChecker struct{}

func (SarcasticDiscardChecker) Level() model.ConventionLevel { return model.L3_Advanced }

func (SarcasticDiscardChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (SarcasticDiscardChecker) Check(ctx *engine.AnalysisContext) {
	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	discardIdx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}

	for i, c := range hand {
		if i == discardIdx || !(c.Clue.HasColorMark() && c.Clue.HasRankMark()) {
			continue
		}
		for p, otherHand := range ctx.StateBefore.Hands {
			if p == ctx.CurrentPlayer {
				continue
			}
			for _, oc := range otherHand {
				if oc.Clue.IsClued() && oc.Card() == c.Card() {
					card := c.Card()
					ctx.Emit(model.SarcasticDiscard, ctx.CurrentPlayer, model.Warning,
						fmt.Sprintf("held known duplicate %s but discarded a different card", card), &card)
					return
				}
			}
		}
	}
}
