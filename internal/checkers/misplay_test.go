package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
)

func TestMisplayCheckerFlagsWrongRank(t *testing.T) {
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B"}},
		Action:        model.GameAction{Kind: model.Play, Target: 5},
		CurrentPlayer: 0,
		StateBefore: &model.GameState{
			Hands:      [][]model.CardInHand{{{Suit: model.Red, Rank: 3, DeckIndex: 5}}, {}},
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
		},
	}
	MisplayChecker{}.Check(ctx)
	require.Len(t, ctx.Violations, 1)
	assert.Equal(t, model.Misplay, ctx.Violations[0].Kind)
	assert.Equal(t, model.Critical, ctx.Violations[0].Severity)
}

func TestMisplayCheckerIgnoresSuccessfulPlay(t *testing.T) {
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B"}},
		Action:        model.GameAction{Kind: model.Play, Target: 5},
		CurrentPlayer: 0,
		StateBefore: &model.GameState{
			Hands:      [][]model.CardInHand{{{Suit: model.Red, Rank: 1, DeckIndex: 5}}, {}},
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
		},
	}
	MisplayChecker{}.Check(ctx)
	assert.Empty(t, ctx.Violations)
}

func TestMisplayCheckerBlamesGiverAtL2WhenFinesseInvalid(t *testing.T) {
	deck := []model.DeckCard{{Suit: model.Red, Rank: 3}}
	stateAtClue := &model.GameState{
		Hands:      [][]model.CardInHand{{}, {{Suit: model.Red, Rank: 3, DeckIndex: 0}}, {}},
		PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
	}
	stateNow := &model.GameState{
		Hands: [][]model.CardInHand{{}, {{
			Suit: model.Red, Rank: 3, DeckIndex: 0,
			Clue: model.ClueMarks{Color: [model.NumSuits]bool{model.Red: true}},
		}}, {}},
		PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
	}
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B", "C"}, Deck: deck},
		Action:        model.GameAction{Kind: model.Play, Target: 0},
		CurrentPlayer: 1,
		Turn:          5,
		Options:       model.AnalyzerOptions{Level: model.L2_Intermediate},
		States:        []*model.GameState{stateAtClue},
		StateBefore:   stateNow,
		ClueHistory: []model.ClueHistoryEntry{
			{Turn: 1, Giver: 0, Target: 1, TouchedDeckIndices: []int{0}},
		},
	}
	MisplayChecker{}.Check(ctx)
	require.Len(t, ctx.Violations, 2)
	assert.Equal(t, model.BadPlayClue, ctx.Violations[0].Kind)
	assert.Equal(t, "A", ctx.Violations[0].Player, "the clue-giver, not the misplayer, is blamed")
	assert.Equal(t, model.Misplay, ctx.Violations[1].Kind)
	assert.Equal(t, model.Info, ctx.Violations[1].Severity)
}

func TestMisplayCheckerFlagsMisreadSaveWhenCardWasAtChop(t *testing.T) {
	chopDeckIndex := 5
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B"}},
		Action:        model.GameAction{Kind: model.Play, Target: 5},
		CurrentPlayer: 1,
		Options:       model.AnalyzerOptions{Level: model.L1_Beginner},
		StateBefore: &model.GameState{
			Hands: [][]model.CardInHand{{}, {{
				Suit: model.Red, Rank: 3, DeckIndex: 5,
				Clue: model.ClueMarks{Rank: [5]bool{false, false, true}},
			}}},
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
		},
		ClueHistory: []model.ClueHistoryEntry{
			{Turn: 1, Giver: 0, Target: 1, TouchedDeckIndices: []int{5}, ChopDeckIndex: &chopDeckIndex},
		},
	}
	MisplayChecker{}.Check(ctx)
	require.Len(t, ctx.Violations, 2)
	assert.Equal(t, model.MisreadSave, ctx.Violations[1].Kind)
}

func TestMisplayCheckerIgnoresFocusThatWasNotChop(t *testing.T) {
	otherDeckIndex := 9
	ctx := &engine.AnalysisContext{
		Game:          &model.Game{Players: []string{"A", "B"}},
		Action:        model.GameAction{Kind: model.Play, Target: 5},
		CurrentPlayer: 1,
		Options:       model.AnalyzerOptions{Level: model.L1_Beginner},
		StateBefore: &model.GameState{
			Hands: [][]model.CardInHand{{}, {{
				Suit: model.Red, Rank: 3, DeckIndex: 5,
				Clue: model.ClueMarks{Rank: [5]bool{false, false, true}},
			}}},
			PlayStacks: [model.NumSuits]int{0, 0, 0, 0, 0},
		},
		ClueHistory: []model.ClueHistoryEntry{
			// The clue's focus landed on this card (FocusDeckIndex), but the
			// true chop at clue time was a different, untouched card.
			{Turn: 1, Giver: 0, Target: 1, TouchedDeckIndices: []int{5}, FocusDeckIndex: intPtr(5), ChopDeckIndex: &otherDeckIndex},
		},
	}
	MisplayChecker{}.Check(ctx)
	require.Len(t, ctx.Violations, 1, "card wasn't at chop when clued, so no MisreadSave")
	assert.Equal(t, model.Misplay, ctx.Violations[0].Kind)
}
