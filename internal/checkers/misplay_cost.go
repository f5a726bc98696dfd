package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// MisplayCostChecker flags an action, taken while clue tokens remained, whose
// very next action is a misplay of a clued card by the next player — a
// single-action lookahead only (spec.md §4.4.4).
type MisplayCostChecker struct{}

func (MisplayCostChecker) Level() model.ConventionLevel { return model.L3_Advanced }

func (MisplayCostChecker) AppliesTo(kind model.ActionKind) bool {
	return kind == model.Play || kind == model.Discard
}

func (MisplayCostChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.StateBefore.ClueTokens <= 0 {
		return
	}
	nextIdx := ctx.ActionIndex + 1
	nextAction, found := ctx.ActionAt(nextIdx)
	if !found || nextAction.Kind != model.Play {
		return
	}

	nextPlayer := ctx.PlayerAt(nextIdx)
	nextState := ctx.States[nextIdx]
	idx, ok := nextState.FindInHand(nextPlayer, nextAction.Target)
	if !ok {
		return
	}
	card := nextState.Hands[nextPlayer][idx]
	if !card.Clue.IsClued() || analysis.IsPlayable(card.Card(), nextState) {
		return
	}

	c := card.Card()
	ctx.Emit(model.MisplayCostViolation, ctx.CurrentPlayer, model.Warning,
		fmt.Sprintf("action preceded %s's misplay of clued %s", ctx.PlayerName(nextPlayer), c), &c)
}
