package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukev/hanabi-analyzer/internal/model"
)

func twoPlayerDeck() []model.DeckCard {
	deck := make([]model.DeckCard, 0, 20)
	for i := 0; i < 20; i++ {
		deck = append(deck, model.DeckCard{Suit: model.Red, Rank: (i % 5) + 1})
	}
	return deck
}

func TestSimulateDealsStartingHands(t *testing.T) {
	game := &model.Game{Players: []string{"A", "B"}, Deck: twoPlayerDeck()}
	states, err := Simulate(game)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Len(t, states[0].Hands[0], 5)
	assert.Len(t, states[0].Hands[1], 5)
	assert.Equal(t, 8, states[0].ClueTokens)
}

func TestSimulateAppliesSuccessfulPlay(t *testing.T) {
	deck := []model.DeckCard{
		{Suit: model.Red, Rank: 1}, {Suit: model.Blue, Rank: 1}, {Suit: model.Green, Rank: 1}, {Suit: model.Yellow, Rank: 1}, {Suit: model.Purple, Rank: 1},
		{Suit: model.Red, Rank: 2}, {Suit: model.Blue, Rank: 2}, {Suit: model.Green, Rank: 2}, {Suit: model.Yellow, Rank: 2}, {Suit: model.Purple, Rank: 2},
		{Suit: model.Red, Rank: 3},
	}
	game := &model.Game{
		Players: []string{"A", "B"},
		Deck:    deck,
		Actions: []model.GameAction{{Kind: model.Play, Target: 0}},
	}
	states, err := Simulate(game)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, 1, states[1].PlayStacks[model.Red])
	assert.Len(t, states[1].Hands[0], 5, "a replacement card should have been drawn")
}

func TestSimulateAppliesMisplay(t *testing.T) {
	deck := []model.DeckCard{
		{Suit: model.Red, Rank: 2}, {Suit: model.Blue, Rank: 1}, {Suit: model.Green, Rank: 1}, {Suit: model.Yellow, Rank: 1}, {Suit: model.Purple, Rank: 1},
		{Suit: model.Red, Rank: 1}, {Suit: model.Blue, Rank: 2}, {Suit: model.Green, Rank: 2}, {Suit: model.Yellow, Rank: 2}, {Suit: model.Purple, Rank: 2},
	}
	game := &model.Game{
		Players: []string{"A", "B"},
		Deck:    deck,
		Actions: []model.GameAction{{Kind: model.Play, Target: 0}},
	}
	states, err := Simulate(game)
	require.NoError(t, err)
	assert.Equal(t, 1, states[1].Strikes)
	assert.Equal(t, 0, states[1].PlayStacks[model.Red])
	assert.Len(t, states[1].DiscardPile, 1)
}

func TestSimulateClueDecrementsTokensAndMarksCards(t *testing.T) {
	game := &model.Game{
		Players: []string{"A", "B"},
		Deck:    twoPlayerDeck(),
		Actions: []model.GameAction{{Kind: model.RankClue, Target: 1, Value: 1}},
	}
	states, err := Simulate(game)
	require.NoError(t, err)
	assert.Equal(t, 7, states[1].ClueTokens)
	for _, c := range states[1].Hands[1] {
		if c.Rank == 1 {
			assert.True(t, c.Clue.Rank[0])
		}
	}
}

func TestSimulateRejectsTooFewPlayers(t *testing.T) {
	game := &model.Game{Players: []string{"Solo"}, Deck: twoPlayerDeck()}
	_, err := Simulate(game)
	require.Error(t, err)
}

func TestSimulateToleratesSelfClueAsNoOp(t *testing.T) {
	game := &model.Game{
		Players: []string{"A", "B"},
		Deck:    twoPlayerDeck(),
		Actions: []model.GameAction{{Kind: model.RankClue, Target: 0, Value: 1}},
	}
	states, err := Simulate(game)
	require.NoError(t, err)
	assert.Equal(t, 8, states[1].ClueTokens, "self-clue must be a silent no-op")
}
