package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// WrongPromptChecker flags a misplay of the oldest-clued card in a hand that
// traces back to an earlier clue given to another player: that clue's focus
// wasn't itself playable, but its connecting card's identity matched what
// the misplayer's own clue marks promised, and a valid finesse reading
// existed at the time (spec.md §4.4.3).
type WrongPromptChecker struct{}

func (WrongPromptChecker) Level() model.ConventionLevel { return model.L2_Intermediate }

func (WrongPromptChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Play }

func (WrongPromptChecker) Check(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	played := hand[idx]
	if analysis.IsPlayable(played.Card(), ctx.StateBefore) {
		return
	}
	if !played.Clue.IsClued() {
		return
	}

	oldestIdx := -1
	for i, c := range hand {
		if c.Clue.IsClued() {
			oldestIdx = i
			break
		}
	}
	if oldestIdx != idx {
		return
	}

	lastTouchTurn := 0
	for _, e := range ctx.ClueHistory {
		if e.Target != ctx.CurrentPlayer {
			continue
		}
		for _, di := range e.TouchedDeckIndices {
			if di == played.DeckIndex {
				lastTouchTurn = e.Turn
			}
		}
	}

	for _, e := range ctx.ClueHistory {
		if e.Turn <= lastTouchTurn || e.Target == ctx.CurrentPlayer || e.FocusDeckIndex == nil {
			continue
		}
		focusCard := ctx.Game.Deck[*e.FocusDeckIndex]
		stateAtClue := ctx.States[e.Turn-1]
		if analysis.IsPlayable(focusCard, stateAtClue) {
			continue
		}

		needed := model.DeckCard{Suit: focusCard.Suit, Rank: focusCard.Rank - 1}
		matches := false
		switch {
		case played.Clue.HasColorMark() && played.Clue.HasRankMark():
			matches = played.Suit == needed.Suit && played.Rank == needed.Rank
		case played.Clue.HasColorMark():
			matches = played.Suit == needed.Suit
		case played.Clue.HasRankMark():
			matches = played.Rank == needed.Rank
		}
		if !matches {
			continue
		}

		inBetween := false
		for _, p := range analysis.PlayersBetween(e.Giver, e.Target, ctx.Game.NumPlayers()) {
			if p == ctx.CurrentPlayer {
				inBetween = true
			}
		}
		if !inBetween {
			continue
		}
		if !analysis.HasValidFinesse(ctx.Game, stateAtClue, e.Giver, e.Target, focusCard) {
			continue
		}

		card := played.Card()
		ctx.EmitAtTurn(e.Turn, model.WrongPrompt, e.Giver, model.Warning,
			fmt.Sprintf("clue at turn %d prompted %s to misplay %s", e.Turn, ctx.PlayerName(ctx.CurrentPlayer), card), &card)
		return
	}
}
