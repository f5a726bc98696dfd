// Package simulate deterministically replays a Game into its full snapshot
// history, following the transition table in spec.md §4.1.
package simulate

import (
	"github.com/lukev/hanabi-analyzer/internal/model"
)

// Simulate derives states[0..len(actions)] from game, where states[0] is the
// post-deal pre-action state and states[i] (i>=1) is the state after applying
// actions[i-1]. Checkers consume stateBefore=states[i], stateAfter=states[i+1]
// for action i (spec.md §4.1).
func Simulate(game *model.Game) ([]*model.GameState, error) {
	if err := game.Validate(); err != nil {
		return nil, err
	}

	initial := deal(game)
	states := make([]*model.GameState, 0, len(game.Actions)+1)
	states = append(states, initial)

	current := initial
	for i, action := range game.Actions {
		next := current.Clone()
		applyAction(game, next, action)
		next.Turn = i + 1
		next.CurrentPlayer = (current.CurrentPlayer + 1) % game.NumPlayers()
		states = append(states, next)
		current = next
	}

	return states, nil
}

// deal constructs the post-deal, pre-action starting snapshot: hand size 5
// for 2-3 players, 4 for 4-5 players, dealt sequentially player 0..P-1
// (spec.md §4.1).
func deal(game *model.Game) *model.GameState {
	handSize := game.HandSize()
	numPlayers := game.NumPlayers()

	state := &model.GameState{
		Turn:          0,
		CurrentPlayer: 0,
		Hands:         make([][]model.CardInHand, numPlayers),
		ClueTokens:    8,
		Strikes:       0,
		DeckIndex:     0,
	}

	deckIndex := 0
	for p := 0; p < numPlayers; p++ {
		hand := make([]model.CardInHand, 0, handSize)
		for c := 0; c < handSize; c++ {
			card := game.Deck[deckIndex]
			hand = append(hand, model.CardInHand{
				Suit:      card.Suit,
				Rank:      card.Rank,
				DeckIndex: deckIndex,
			})
			deckIndex++
		}
		state.Hands[p] = hand
	}
	state.DeckIndex = deckIndex

	return state
}

// applyAction mutates state in place to reflect action, following the
// per-action transition table in spec.md §4.1. Malformed data (action
// references an absent deckIndex, a self-clue, a clue at zero tokens) is
// tolerated as a silent no-op; the simulator never validates legality.
func applyAction(game *model.Game, state *model.GameState, action model.GameAction) {
	player := state.CurrentPlayer

	switch action.Kind {
	case model.Play:
		applyPlay(game, state, player, action.Target)
	case model.Discard:
		applyDiscard(game, state, player, action.Target)
	case model.ColorClue:
		applyClue(state, player, action.Target, func(c model.CardInHand) bool {
			return int(c.Suit) == action.Value
		}, func(c *model.CardInHand) { c.Clue.Color[action.Value] = true })
	case model.RankClue:
		applyClue(state, player, action.Target, func(c model.CardInHand) bool {
			return c.Rank == action.Value
		}, func(c *model.CardInHand) { c.Clue.Rank[action.Value-1] = true })
	}
}

func applyPlay(game *model.Game, state *model.GameState, player int, deckIndex int) {
	idx, found := state.FindInHand(player, deckIndex)
	if !found {
		return
	}
	card := state.Hands[player][idx]
	removeFromHand(state, player, idx)

	if state.PlayStacks[card.Suit] == card.Rank-1 {
		state.PlayStacks[card.Suit] = card.Rank
		if card.Rank == 5 && state.ClueTokens < 8 {
			state.ClueTokens++
		}
	} else {
		state.DiscardPile = append(state.DiscardPile, card.Card())
		state.Strikes++
	}

	drawIfAvailable(game, state, player)
}

func applyDiscard(game *model.Game, state *model.GameState, player int, deckIndex int) {
	idx, found := state.FindInHand(player, deckIndex)
	if !found {
		return
	}
	card := state.Hands[player][idx]
	removeFromHand(state, player, idx)
	state.DiscardPile = append(state.DiscardPile, card.Card())
	if state.ClueTokens < 8 {
		state.ClueTokens++
	}
	drawIfAvailable(game, state, player)
}

// drawIfAvailable draws the top of the deck into player's hand, if any cards remain.
func drawIfAvailable(game *model.Game, state *model.GameState, player int) {
	if state.DeckIndex >= len(game.Deck) {
		return
	}
	card := game.Deck[state.DeckIndex]
	state.Hands[player] = append(state.Hands[player], model.CardInHand{
		Suit:      card.Suit,
		Rank:      card.Rank,
		DeckIndex: state.DeckIndex,
	})
	state.DeckIndex++
}

func applyClue(state *model.GameState, giver int, target int, matches func(model.CardInHand) bool, mark func(*model.CardInHand)) {
	if target == giver {
		return
	}
	if target < 0 || target >= len(state.Hands) {
		return
	}
	if state.ClueTokens <= 0 {
		return
	}
	for i := range state.Hands[target] {
		if matches(state.Hands[target][i]) {
			mark(&state.Hands[target][i])
		}
	}
	state.ClueTokens--
}

func removeFromHand(state *model.GameState, player int, idx int) {
	hand := state.Hands[player]
	state.Hands[player] = append(hand[:idx:idx], hand[idx+1:]...)
}
