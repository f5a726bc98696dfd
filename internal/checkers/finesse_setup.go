package checkers

import (
	"github.com/google/uuid"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// FinesseSetupChecker detects a clue whose focus sits one rank above the
// next playable rank and a valid finesse recipient exists; it registers a
// PendingFinesse with a deadline at that recipient's next turn
// (spec.md §4.4.2, §4.5).
type FinesseSetupChecker struct{}

func (FinesseSetupChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (FinesseSetupChecker) AppliesTo(kind model.ActionKind) bool { return kind.IsClue() }

func (FinesseSetupChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.Action.Target == ctx.CurrentPlayer {
		return
	}
	handBefore := ctx.StateBefore.Hands[ctx.Action.Target]
	focusIdx, ok := analysis.FocusOf(handBefore, ctx.Action)
	if !ok {
		return
	}
	focusCard := handBefore[focusIdx].Card()
	if focusCard.Rank != ctx.StateBefore.PlayStacks[focusCard.Suit]+2 {
		return
	}

	needed := model.DeckCard{Suit: focusCard.Suit, Rank: focusCard.Rank - 1}
	finessePlayer, _, found := analysis.FindFinessePlayer(ctx.Game, ctx.StateBefore, ctx.CurrentPlayer, ctx.Action.Target, needed)
	if !found {
		return
	}

	ctx.PendingFinesses = append(ctx.PendingFinesses, model.PendingFinesse{
		ID:                          uuid.New(),
		SetupTurn:                   ctx.Turn,
		Giver:                       ctx.CurrentPlayer,
		Target:                      ctx.Action.Target,
		FinessePlayer:               finessePlayer,
		NeededSuit:                  needed.Suit,
		NeededRank:                  needed.Rank,
		ResponseDeadlineActionIndex: nextTurnIndexFor(ctx, finessePlayer),
	})
}
