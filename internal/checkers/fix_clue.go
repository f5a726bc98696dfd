package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// FixClueChecker flags any action taken while a teammate, acting before the
// actor's next turn, holds a clued trash card and goes on to play it — and
// the actor's own action isn't itself a fix clue touching that card
// (spec.md §4.4.4).
type FixClueChecker struct{}

func (FixClueChecker) Level() model.ConventionLevel { return model.L3_Advanced }

func (FixClueChecker) AppliesTo(model.ActionKind) bool { return true }

func (FixClueChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.StateBefore.ClueTokens <= 0 {
		return
	}
	nextOwn := nextTurnIndexFor(ctx, ctx.CurrentPlayer)

	for j := ctx.ActionIndex + 1; j < nextOwn && j < len(ctx.Game.Actions); j++ {
		action := ctx.Game.Actions[j]
		if action.Kind != model.Play {
			continue
		}
		player := ctx.PlayerAt(j)
		stateAtJ := ctx.States[j]
		idx, found := stateAtJ.FindInHand(player, action.Target)
		if !found {
			continue
		}
		card := stateAtJ.Hands[player][idx]
		if !card.Clue.IsClued() || !analysis.IsTrash(card.Card(), stateAtJ) {
			continue
		}

		if ctx.Action.Kind.IsClue() && ctx.Action.Target == player {
			handBefore := ctx.StateBefore.Hands[player]
			fixed := false
			for _, ti := range analysis.TouchedBy(handBefore, ctx.Action) {
				if handBefore[ti].DeckIndex == card.DeckIndex {
					fixed = true
				}
			}
			if fixed {
				continue
			}
		}

		c := card.Card()
		ctx.Emit(model.FixClue, ctx.CurrentPlayer, model.Warning,
			fmt.Sprintf("%s will misplay trash %s; a fix clue was available", ctx.PlayerName(player), c), &c)
	}
}
