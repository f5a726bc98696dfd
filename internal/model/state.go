package model

// GameState is one snapshot of the table: whose turn it is, every hand, the
// play stacks, the discard pile, and the token counts (spec.md §3).
type GameState struct {
	Turn          int            `json:"turn"`
	CurrentPlayer int            `json:"currentPlayer"`
	Hands         [][]CardInHand `json:"hands"`
	PlayStacks    [NumSuits]int  `json:"playStacks"`
	DiscardPile   []DeckCard     `json:"discardPile"`
	ClueTokens    int            `json:"clueTokens"`
	Strikes       int            `json:"strikes"`
	DeckIndex     int            `json:"deckIndex"`
}

// Clone returns a deep copy: mutating the clone must never retroactively
// affect the original snapshot (spec.md §4.1 "snapshots are deep clones").
func (s *GameState) Clone() *GameState {
	clone := &GameState{
		Turn:          s.Turn,
		CurrentPlayer: s.CurrentPlayer,
		PlayStacks:    s.PlayStacks,
		ClueTokens:    s.ClueTokens,
		Strikes:       s.Strikes,
		DeckIndex:     s.DeckIndex,
	}
	clone.Hands = make([][]CardInHand, len(s.Hands))
	for i, hand := range s.Hands {
		clone.Hands[i] = make([]CardInHand, len(hand))
		copy(clone.Hands[i], hand)
	}
	clone.DiscardPile = make([]DeckCard, len(s.DiscardPile))
	copy(clone.DiscardPile, s.DiscardPile)
	return clone
}

// DiscardedCopies counts how many copies of a given card have already been
// discarded.
func (s *GameState) DiscardedCopies(card DeckCard) int {
	n := 0
	for _, c := range s.DiscardPile {
		if c == card {
			n++
		}
	}
	return n
}

// FindInHand returns the hand index of the card with the given deck index in
// player p's hand, or (-1, false) if not present.
func (s *GameState) FindInHand(player int, deckIndex int) (int, bool) {
	for i, c := range s.Hands[player] {
		if c.DeckIndex == deckIndex {
			return i, true
		}
	}
	return -1, false
}
