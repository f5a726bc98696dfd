package analysis

import "github.com/lukev/hanabi-analyzer/internal/model"

// PlayersBetween returns, in turn order, the player indices strictly between
// giver and target (exclusive of both), wrapping modulo numPlayers.
func PlayersBetween(giver, target, numPlayers int) []int {
	var players []int
	for i := (giver + 1) % numPlayers; i != target; i = (i + 1) % numPlayers {
		players = append(players, i)
		if len(players) >= numPlayers {
			break
		}
	}
	return players
}

// HasValidFinesse reports whether targetCard is one-away from playable AND
// some player strictly between giver and target (in turn order) holds the
// connecting card — (targetCard.Suit, targetCard.Rank-1) — at their finesse
// position in stateAtClue (spec.md §4.2).
func HasValidFinesse(game *model.Game, stateAtClue *model.GameState, giver, target int, targetCard model.DeckCard) bool {
	if targetCard.Rank != stateAtClue.PlayStacks[targetCard.Suit]+2 {
		return false
	}
	needed := model.DeckCard{Suit: targetCard.Suit, Rank: targetCard.Rank - 1}
	for _, p := range PlayersBetween(giver, target, game.NumPlayers()) {
		idx, ok := FinessePositionIndex(stateAtClue.Hands[p])
		if !ok {
			continue
		}
		if stateAtClue.Hands[p][idx].Card() == needed {
			return true
		}
	}
	return false
}

// FindFinessePlayer walks players from giver+1 up to (not including) target
// and returns the first whose finesse-position card matches needed, along
// with that player's hand index. Returns (-1, -1, false) if none match
// (spec.md §4.4.2 FinesseSetupChecker).
func FindFinessePlayer(game *model.Game, stateAtClue *model.GameState, giver, target int, needed model.DeckCard) (player int, handIdx int, ok bool) {
	for _, p := range PlayersBetween(giver, target, game.NumPlayers()) {
		idx, has := FinessePositionIndex(stateAtClue.Hands[p])
		if !has {
			continue
		}
		if stateAtClue.Hands[p][idx].Card() == needed {
			return p, idx, true
		}
	}
	return -1, -1, false
}
