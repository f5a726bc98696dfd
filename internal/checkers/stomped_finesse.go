package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// StompedFinesseChecker flags a clue that directly identifies the card a
// pending finesse was relying on a blind play to reveal, wasting the setup
// (spec.md §4.4.3, §4.5).
type StompedFinesseChecker struct{}

func (StompedFinesseChecker) Level() model.ConventionLevel { return model.L2_Intermediate }

func (StompedFinesseChecker) AppliesTo(kind model.ActionKind) bool { return kind.IsClue() }

func (StompedFinesseChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.Action.Target == ctx.CurrentPlayer {
		return
	}
	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	touchedIdx := analysis.TouchedBy(handBefore, ctx.Action)

	for i := range ctx.PendingFinesses {
		pf := &ctx.PendingFinesses[i]
		if pf.IsResolved || pf.WasStomped || ctx.Action.Target != pf.FinessePlayer {
			continue
		}
		for _, idx := range touchedIdx {
			c := handBefore[idx]
			if c.Suit == pf.NeededSuit && c.Rank == pf.NeededRank {
				pf.WasStomped = true
				card := c.Card()
				ctx.Emit(model.StompedFinesse, ctx.CurrentPlayer, model.Warning,
					fmt.Sprintf("clue directly identifies %s, wasting the finesse set up at turn %d", card, pf.SetupTurn), &card)
				break
			}
		}
	}
}
