package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// MisplayChecker flags a Play that doesn't match playStacks[suit]+1. At
// L1+ it additionally flags a misread save clue; at L2+, if the card was
// clued by a clue that doesn't read as a valid finesse, it blames the
// clue-giver with a BadPlayClue and records the misplayer's Misplay at Info
// severity instead of Critical (spec.md §4.4.1, §4.4.2).
type MisplayChecker struct{}

func (MisplayChecker) Level() model.ConventionLevel { return model.L0_Basic }

func (MisplayChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Play }

func (MisplayChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	card := ctx.StateBefore.Hands[ctx.CurrentPlayer][idx]
	cardID := card.Card()
	if analysis.IsPlayable(cardID, ctx.StateBefore) {
		return
	}

	triggering := findLastClueTouching(ctx, ctx.CurrentPlayer, card.DeckIndex)

	blamedGiver := false
	if ctx.Options.Level >= model.L2_Intermediate && card.Clue.IsClued() && triggering != nil {
		stateAtClue := ctx.States[triggering.Turn-1]
		if !analysis.HasValidFinesse(ctx.Game, stateAtClue, triggering.Giver, triggering.Target, cardID) {
			ctx.EmitAtTurn(triggering.Turn, model.BadPlayClue, triggering.Giver, model.Critical,
				fmt.Sprintf("clue at turn %d misled %s into misplaying %s", triggering.Turn, ctx.PlayerName(ctx.CurrentPlayer), cardID), &cardID)
			ctx.Emit(model.Misplay, ctx.CurrentPlayer, model.Info,
				fmt.Sprintf("misplayed %s following a misleading clue at turn %d", cardID, triggering.Turn), &cardID)
			blamedGiver = true
		}
	}
	if !blamedGiver {
		ctx.Emit(model.Misplay, ctx.CurrentPlayer, model.Critical,
			fmt.Sprintf("played %s, needed rank %d", cardID, ctx.StateBefore.PlayStacks[cardID.Suit]+1), &cardID)
	}

	if ctx.Options.Level >= model.L1_Beginner && triggering != nil &&
		triggering.ChopDeckIndex != nil && *triggering.ChopDeckIndex == card.DeckIndex {
		ctx.Emit(model.MisreadSave, ctx.CurrentPlayer, model.Warning,
			"misread save clue as an instruction to play", &cardID)
	}
}
