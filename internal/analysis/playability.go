package analysis

import "github.com/lukev/hanabi-analyzer/internal/model"

// IsPlayable reports whether card can be legally played onto its stack right now.
func IsPlayable(card model.DeckCard, state *model.GameState) bool {
	return state.PlayStacks[card.Suit] == card.Rank-1
}

// IsSuitDead reports whether some rank strictly between the current stack
// height and targetRank has had every copy discarded — meaning targetRank
// can never become playable (spec.md §4.2).
func IsSuitDead(suit model.Suit, targetRank int, state *model.GameState) bool {
	for r := state.PlayStacks[suit] + 1; r < targetRank; r++ {
		card := model.DeckCard{Suit: suit, Rank: r}
		if state.DiscardedCopies(card) >= model.CopiesForRank(r) {
			return true
		}
	}
	return false
}

// IsTrash reports whether card can never usefully be played: its rank is
// already on or below the stack, or its suit is dead at that rank.
func IsTrash(card model.DeckCard, state *model.GameState) bool {
	if card.Rank <= state.PlayStacks[card.Suit] {
		return true
	}
	return IsSuitDead(card.Suit, card.Rank, state)
}

// IsLastCopy reports whether only one copy of card remains unaccounted for
// (still in some hand or still in the draw pile) — spec.md §4.2.
func IsLastCopy(card model.DeckCard, state *model.GameState, game *model.Game) bool {
	remaining := 0
	for _, hand := range state.Hands {
		for _, c := range hand {
			if c.Card() == card {
				remaining++
			}
		}
	}
	for i := state.DeckIndex; i < len(game.Deck); i++ {
		if game.Deck[i] == card {
			remaining++
		}
	}
	return remaining == 1
}

// IsCritical reports whether card is the last remaining copy of a card still
// needed to complete its suit (losing it caps the max achievable score).
func IsCritical(card model.DeckCard, state *model.GameState, game *model.Game) bool {
	if card.Rank <= state.PlayStacks[card.Suit] {
		return false
	}
	return IsLastCopy(card, state, game)
}

// AnyPlayable reports whether any card in hand is currently playable.
func AnyPlayable(hand []model.CardInHand, state *model.GameState) bool {
	for _, c := range hand {
		if IsPlayable(c.Card(), state) {
			return true
		}
	}
	return false
}
