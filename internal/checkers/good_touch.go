package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// GoodTouchChecker flags a clue that touches trash, touches two copies of
// the same identity within one hand, or touches a card already clued
// elsewhere (spec.md §4.4.2).
type GoodTouchChecker struct{}

func (GoodTouchChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (GoodTouchChecker) AppliesTo(kind model.ActionKind) bool { return kind.IsClue() }

func (GoodTouchChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.Action.Target == ctx.CurrentPlayer {
		return
	}
	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	touchedIdx := analysis.TouchedBy(handBefore, ctx.Action)

	seenNew := make(map[model.DeckCard]bool)
	for _, idx := range touchedIdx {
		card := handBefore[idx].Card()
		isNew := !handBefore[idx].Clue.IsClued()

		if analysis.IsTrash(card, ctx.StateBefore) {
			ctx.Emit(model.GoodTouchViolation, ctx.CurrentPlayer, model.Warning,
				fmt.Sprintf("clue touches trash card %s", card), &card)
			continue
		}

		if isNew {
			if seenNew[card] {
				ctx.Emit(model.GoodTouchViolation, ctx.CurrentPlayer, model.Warning,
					fmt.Sprintf("clue touches two copies of %s in the same hand", card), &card)
			}
			seenNew[card] = true
		}

		for p, hand := range ctx.StateBefore.Hands {
			if p == ctx.CurrentPlayer || p == ctx.Action.Target {
				continue
			}
			for _, c := range hand {
				if c.Card() == card && c.Clue.IsClued() {
					ctx.Emit(model.GoodTouchViolation, ctx.CurrentPlayer, model.Warning,
						fmt.Sprintf("clue touches %s, already clued in another hand", card), &card)
				}
			}
		}
	}
}
