package checkers

import (
	"fmt"

	"github.com/lukev/hanabi-analyzer/internal/analysis"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// MissedPromptChecker flags a discard made while the actor's own clue marks
// alone are enough to deduce that some held card is currently playable
// (spec.md §4.4.2).
type MissedPromptChecker struct{}

func (MissedPromptChecker) Level() model.ConventionLevel { return model.L1_Beginner }

func (MissedPromptChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (MissedPromptChecker) Check(ctx *engine.AnalysisContext) {
	hand := ctx.StateBefore.Hands[ctx.CurrentPlayer]
	for _, c := range hand {
		if !c.Clue.IsClued() {
			continue
		}

		known := false
		switch {
		case c.Clue.HasColorMark() && c.Clue.HasRankMark():
			known = analysis.IsPlayable(c.Card(), ctx.StateBefore)
		case c.Clue.HasRankMark():
			known = true
			for s := 0; s < model.NumSuits; s++ {
				if ctx.StateBefore.PlayStacks[s] != c.Rank-1 {
					known = false
					break
				}
			}
		case c.Clue.HasColorMark():
			known = c.Rank == ctx.StateBefore.PlayStacks[c.Suit]+1
		}

		if known {
			card := c.Card()
			ctx.Emit(model.MissedPrompt, ctx.CurrentPlayer, model.Warning,
				fmt.Sprintf("could deduce %s is playable from clue marks alone", card), &card)
			return
		}
	}
}
