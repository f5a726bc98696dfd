// Package analysis provides pure helper functions over GameState snapshots:
// chop/finesse position, playability, triviality, criticality, suit-dead
// tests, touched-by-clue sets, focus calculation, and finesse search
// (spec.md §4.2).
package analysis

import "github.com/lukev/hanabi-analyzer/internal/model"

// ChopIndex returns the lowest hand index with no clue marks — the next
// card the player will discard absent instruction. Returns (-1, false) if
// the hand is locked (every card clued).
func ChopIndex(hand []model.CardInHand) (int, bool) {
	for i, c := range hand {
		if !c.Clue.IsClued() {
			return i, true
		}
	}
	return -1, false
}

// FinessePositionIndex returns the highest hand index with no clue marks —
// the player's "blind play" slot. Returns (-1, false) if the hand is locked.
func FinessePositionIndex(hand []model.CardInHand) (int, bool) {
	for i := len(hand) - 1; i >= 0; i-- {
		if !hand[i].Clue.IsClued() {
			return i, true
		}
	}
	return -1, false
}
