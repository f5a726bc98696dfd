package checkers

import (
	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// MCVPChecker (minimum-clue-value-principle) flags a clue that touches no
// newly-clued card. At L2+ a clue that re-touches an already-clued,
// currently playable card is a tempo clue and is exempt (spec.md §4.4.2).
type MCVPChecker struct{}

func (MCVPChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (MCVPChecker) AppliesTo(kind model.ActionKind) bool { return kind.IsClue() }

func (MCVPChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.Action.Target == ctx.CurrentPlayer {
		return
	}
	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	touchedIdx := analysis.TouchedBy(handBefore, ctx.Action)

	newCount := 0
	tempoException := false
	for _, idx := range touchedIdx {
		c := handBefore[idx]
		if !c.Clue.IsClued() {
			newCount++
		} else if ctx.Options.Level >= model.L2_Intermediate && analysis.IsPlayable(c.Card(), ctx.StateBefore) {
			tempoException = true
		}
	}

	if newCount == 0 && !tempoException {
		ctx.Emit(model.MCVPViolation, ctx.CurrentPlayer, model.Warning, "clue touches no new cards", nil)
	}
}
