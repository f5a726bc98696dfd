package trackers

import (
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// PendingFinesseTracker resolves pending finesses that were blind-played and
// finalizes any whose deadline has arrived without a play, deferring the
// MissedFinesse emission to the deadline so intervening clues get a chance to
// stomp the finesse first (spec.md §4.5, §9).
type PendingFinesseTracker struct{}

func (PendingFinesseTracker) AppliesTo(model.ActionKind) bool { return true }

func (PendingFinesseTracker) Track(ctx *engine.AnalysisContext) {
	if ctx.Action.Kind == model.Play {
		resolveBlindPlays(ctx)
	}
	expireOverdueFinesses(ctx)
}

func resolveBlindPlays(ctx *engine.AnalysisContext) {
	idx, found := ctx.StateBefore.FindInHand(ctx.CurrentPlayer, ctx.Action.Target)
	if !found {
		return
	}
	played := ctx.StateBefore.Hands[ctx.CurrentPlayer][idx].Card()

	for i := range ctx.PendingFinesses {
		pf := &ctx.PendingFinesses[i]
		if pf.IsResolved || pf.FinessePlayer != ctx.CurrentPlayer {
			continue
		}
		if played.Suit == pf.NeededSuit && played.Rank == pf.NeededRank {
			pf.IsResolved = true
		}
	}
}

func expireOverdueFinesses(ctx *engine.AnalysisContext) {
	for i := range ctx.PendingFinesses {
		pf := &ctx.PendingFinesses[i]
		if pf.IsResolved || pf.WasStomped {
			continue
		}
		if pf.ResponseDeadlineActionIndex > ctx.ActionIndex {
			continue
		}
		pf.IsResolved = true
		ctx.Emit(model.MissedFinesse, pf.FinessePlayer, model.Info,
			"finesse player's turn arrived without the expected blind play", nil)
	}
}
