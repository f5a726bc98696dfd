package checkers

import (
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// IllegalDiscardChecker flags a discard made at eight clue tokens, where the
// discard action should have been unavailable (spec.md §4.4.1).
type IllegalDiscardChecker struct{}

func (IllegalDiscardChecker) Level() model.ConventionLevel { return model.L0_Basic }

func (IllegalDiscardChecker) AppliesTo(kind model.ActionKind) bool { return kind == model.Discard }

func (IllegalDiscardChecker) Check(ctx *engine.AnalysisContext) {
	if ctx.StateBefore.ClueTokens >= 8 {
		ctx.Emit(model.IllegalDiscard, ctx.CurrentPlayer, model.Critical,
			"discarded while holding eight clue tokens", nil)
	}
}
