package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// FiveStallChecker flags a rank-5 clue, outside the early game, whose focus
// is an off-chop, not-currently-playable 5 — a stall disguised as
// information (spec.md §4.4.3).
type FiveStallChecker struct{}

func (FiveStallChecker) Level() model.ConventionLevel { return model.L2_Intermediate }

func (FiveStallChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.RankClue }

func (FiveStallChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.Action.Value != 5 || ctx.IsEarlyGame || ctx.Action.Target == ctx.CurrentPlayer {
		return
	}
	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	focusIdx, ok := analysis.FocusOf(handBefore, ctx.Action)
	if !ok {
		return
	}
	focusCard := handBefore[focusIdx]
	if focusCard.Rank != 5 {
		return
	}
	if chopIdx, hasChop := analysis.ChopIndex(handBefore); hasChop && focusIdx == chopIdx {
		return
	}
	if analysis.IsPlayable(focusCard.Card(), ctx.StateBefore) {
		return
	}

	c := focusCard.Card()
	ctx.Emit(model.FiveStall, ctx.CurrentPlayer, model.Warning,
		fmt.Sprintf("rank-5 clue stalls on off-chop non-playable %s", c), &c)
}
