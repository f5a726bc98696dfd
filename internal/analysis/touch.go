package analysis

import "github.com/lukev/hanabi-analyzer/internal/model"

// TouchedBy returns the hand indices that action's clue value touches: for a
// color clue, cards whose suit matches; for a rank clue, cards whose rank
// matches (spec.md §4.2). Play/Discard actions touch nothing.
func TouchedBy(hand []model.CardInHand, action model.GameAction) []int {
	var touched []int
	switch action.Kind {
	case model.ColorClue:
		for i, c := range hand {
			if int(c.Suit) == action.Value {
				touched = append(touched, i)
			}
		}
	case model.RankClue:
		for i, c := range hand {
			if c.Rank == action.Value {
				touched = append(touched, i)
			}
		}
	}
	return touched
}

// FocusOf computes the H-Group 4-step focus rule (spec.md §4.2): let T be the
// newly-touched cards (touched by this clue, not already clued before it);
// if T is empty, focus is undefined (a pure re-touch/tempo clue). Otherwise,
// if the pre-clue chop is in T, focus is the chop; else focus is the
// highest-index card in T. handBefore must be the receiving hand as it stood
// immediately before this clue was applied.
func FocusOf(handBefore []model.CardInHand, action model.GameAction) (int, bool) {
	touched := TouchedBy(handBefore, action)
	var newlyTouched []int
	for _, idx := range touched {
		if !handBefore[idx].Clue.IsClued() {
			newlyTouched = append(newlyTouched, idx)
		}
	}
	if len(newlyTouched) == 0 {
		return -1, false
	}

	chop, hasChop := ChopIndex(handBefore)
	if hasChop {
		for _, idx := range newlyTouched {
			if idx == chop {
				return chop, true
			}
		}
	}

	highest := newlyTouched[0]
	for _, idx := range newlyTouched {
		if idx > highest {
			highest = idx
		}
	}
	return highest, true
}
