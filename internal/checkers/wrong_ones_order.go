package checkers

import (
	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// PlayingMultipleOnesChecker flags playing a rank-clued 1 while an older
// rank-clued, currently-playable 1 sits earlier in the same hand
// (spec.md §4.4.4).
type PlayingMultipleOnesChecker struct{}

func (PlayingMultipleOnesChecker) Level() model.ConventionLevel { return model.L3_Advanced }

func (PlayingMultipleOnesChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Play }

func (PlayingMultipleOnesChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	played := hand[idx]
	if played.Rank != 1 || !played.Clue.HasRankMark() {
		return
	}

	oldest := -1
	for i, c := range hand {
		if c.Rank == 1 && c.Clue.HasRankMark() && analysis.IsPlayable(c.Card(), ctx.StateBefore) {
			oldest = i
			break
		}
	}
	if oldest == -1 || oldest == idx {
		return
	}

	card := played.Card()
	ctx.Emit(model.WrongOnesOrder, ctx.CurrentPlayer, model.Warning,
		"played a rank-1-clued 1 out of order; an older playable 1 was available", &card)
}
