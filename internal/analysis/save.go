package analysis

import "github.com/lukev/hanabi-analyzer/internal/model"

// NeedsSave reports whether card, sitting unclued at ownerDeckIndex, is the
// kind of card a save clue protects: a 5 whose stack is unfinished, the last remaining copy of
// anything, or a 2 whose sibling copy isn't visible anywhere actor can see
// (spec.md §4.4.2 MissedSaveChecker).
func NeedsSave(card model.DeckCard, ownerDeckIndex int, state *model.GameState, game *model.Game, actor int) bool {
	if card.Rank == 5 && state.PlayStacks[card.Suit] < 5 {
		return true
	}
	if IsLastCopy(card, state, game) {
		return true
	}
	if card.Rank == 2 {
		return !visibleToActor(card, ownerDeckIndex, state, actor)
	}
	return false
}

func visibleToActor(card model.DeckCard, ownerDeckIndex int, state *model.GameState, actor int) bool {
	for p, hand := range state.Hands {
		if p == actor {
			continue
		}
		for _, c := range hand {
			if c.DeckIndex != ownerDeckIndex && c.Card() == card {
				return true
			}
		}
	}
	for _, c := range state.DiscardPile {
		if c == card {
			return true
		}
	}
	return false
}
