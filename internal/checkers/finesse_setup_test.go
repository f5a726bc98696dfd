package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

func TestFinesseSetupCheckerRegistersPendingFinesse(t *testing.T) {
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B", "C"}},
		Action:        model.GameAction{Kind: model.ColorClue, Target: 2, Value: int(model.Red)},
		CurrentPlayer: 0,
		ActionIndex:   0,
		StateBefore: &model.GameState{
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
			Hands: [][]model.CardInHand{
				{},
				{{Suit: model.Red, Rank: 1, DeckIndex: 7}},
				{{Suit: model.Red, Rank: 2, DeckIndex: 8}},
			},
		},
	}
	FinesseSetupChecker{}.Check(ctx)
	require.Len(t, ctx.PendingFinesses, 1)
	pf := ctx.PendingFinesses[0]
	assert.Equal(t, 1, pf.FinessePlayer)
	assert.Equal(t, model.Red, pf.NeededSuit)
	assert.Equal(t, 1, pf.NeededRank)
	assert.Equal(t, 1, pf.ResponseDeadlineActionIndex, "player 1's next turn after action index 0")
}

func TestFinesseSetupCheckerIgnoresNonFinesseFocus(t *testing.T) {
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B", "C"}},
		Action:        model.GameAction{Kind: model.ColorClue, Target: 2, Value: int(model.Red)},
		CurrentPlayer: 0,
		StateBefore: &model.GameState{
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
			Hands: [][]model.CardInHand{
				{},
				{},
				{{Suit: model.Red, Rank: 1, DeckIndex: 8}},
			},
		},
	}
	FinesseSetupChecker{}.Check(ctx)
	assert.Empty(t, ctx.PendingFinesses)
}
