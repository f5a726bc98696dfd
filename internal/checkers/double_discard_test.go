package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

func TestDoubleDiscardAvoidanceCheckerFlagsBackToBackChopDiscards(t *testing.T) {
	prevState := &model.GameState{
		PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
		Hands:      [][]model.CardInHand{{{Suit: model.Red, Rank: 3, DeckIndex: 1}}, {}},
	}
	ctx := &engine.AnalysisContext{
		Game: &model.Game{
			Players: []string{"A", "B"},
			Actions: []model.GameAction{{Kind: model.Discard, Target: 1}, {Kind: model.Discard, Target: 2}},
		},
		Action:        model.GameAction{Kind: model.Discard, Target: 2},
		CurrentPlayer: 1,
		ActionIndex:   1,
		States:        []*model.GameState{prevState},
		StateBefore: &model.GameState{
			ClueTokens: 5,
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
			Hands:      [][]model.CardInHand{{}, {{Suit: model.Blue, Rank: 4, DeckIndex: 2}}},
		},
	}
	DoubleDiscardAvoidanceChecker{}.Check(ctx)
	require.Len(t, ctx.Violations, 1)
	assert.Equal(t, model.DoubleDiscardAvoidance, ctx.Violations[0].Kind)
}

func TestDoubleDiscardAvoidanceCheckerSkipsFirstAction(t *testing.T) {
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B"}},
		Action:        model.GameAction{Kind: model.Discard, Target: 1},
		CurrentPlayer: 0,
		ActionIndex:   0,
		StateBefore:   &model.GameState{Hands: [][]model.CardInHand{{{Suit: model.Red, Rank: 3, DeckIndex: 1}}}},
	}
	DoubleDiscardAvoidanceChecker{}.Check(ctx)
	assert.Empty(t, ctx.Violations)
}
