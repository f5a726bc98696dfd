package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukev/hanabi-analyzer/internal/model"
)

func TestChopIndex(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1, Clue: model.ClueMarks{Color: [model.NumSuits]bool{true}}},
		{Suit: model.Blue, Rank: 2},
		{Suit: model.Green, Rank: 3},
	}
	idx, ok := ChopIndex(hand)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestChopIndexLockedHand(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1, Clue: model.ClueMarks{Color: [model.NumSuits]bool{true}}},
	}
	_, ok := ChopIndex(hand)
	assert.False(t, ok)
}

func TestFinessePositionIndex(t *testing.T) {
	hand := []model.CardInHand{
		{Suit: model.Red, Rank: 1},
		{Suit: model.Blue, Rank: 2, Clue: model.ClueMarks{Rank: [5]bool{false, true}}},
		{Suit: model.Green, Rank: 3},
	}
	idx, ok := FinessePositionIndex(hand)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}
