package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukev/hanabi-analyzer/internal/model"
)

func TestTouchedByColorClue(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1},
		{Suit: model.Blue, Rank: 2},
		{Suit: model.Red, Rank: 3},
	}
	touched := TouchedBy(hand, model.GameAction{Kind: model.ColorClue, Value: int(model.Red)})
	assert.Equal(t, []int{0, 2}, touched)
}

func TestTouchedByRankClue(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1},
		{Suit: model.Blue, Rank: 1},
		{Suit: model.Green, Rank: 2},
	}
	touched := TouchedBy(hand, model.GameAction{Kind: model.RankClue, Value: 1})
	assert.Equal(t, []int{0, 1}, touched)
}

func TestFocusOfPrefersChop(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1},
		{Suit: model.Red, Rank: 2},
		{Suit: model.Red, Rank: 3},
	}
	focus, ok := FocusOf(hand, model.GameAction{Kind: model.ColorClue, Value: int(model.Red)})
	require.True(t, ok)
	assert.Equal(t, 0, focus, "chop (lowest unclued index) should win focus when touched")
}

func TestFocusOfHighestWhenChopUntouched(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Blue, Rank: 1},
		{Suit: model.Red, Rank: 2},
		{Suit: model.Red, Rank: 3},
	}
	focus, ok := FocusOf(hand, model.GameAction{Kind: model.ColorClue, Value: int(model.Red)})
	require.True(t, ok)
	assert.Equal(t, 2, focus)
}

func TestFocusOfUndefinedWhenNoNewTouch(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1, Clue: model.ClueMarks{Color: [model.NumSuits]bool{model.Red: true}}},
	}
	_, ok := FocusOf(hand, model.GameAction{Kind: model.ColorClue, Value: int(model.Red)})
	assert.False(t, ok)
}
