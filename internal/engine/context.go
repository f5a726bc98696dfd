// Package engine hosts the per-action shared analysis context and the
// tracker/checker pipeline that drives over it (spec.md §4.3, §4.5, §9).
package engine

import (
	"github.com/lukev/hanabi-analyzer/internal/model"
	"github.com/sirupsen/logrus"
)

// AnalysisContext is the per-action shared container passed by exclusive
// mutable borrow into each tracker and checker (spec.md §4.4, §9). It is
// owned exclusively by the Orchestrator for the duration of one Analyze call.
type AnalysisContext struct {
	Game    *model.Game
	States  []*model.GameState
	Options model.AnalyzerOptions
	Logger  *logrus.Logger

	// Rebound for every action in the loop.
	Action        model.GameAction
	ActionIndex   int
	Turn          int
	CurrentPlayer int
	StateBefore   *model.GameState
	StateAfter    *model.GameState

	// Cross-turn accumulators (append-mostly, in turn order).
	ClueHistory     []model.ClueHistoryEntry
	PendingFinesses []model.PendingFinesse
	IsEarlyGame     bool
	Violations      []model.RuleViolation
}

// PlayerName returns the display name of a player index.
func (ctx *AnalysisContext) PlayerName(player int) string {
	if player < 0 || player >= len(ctx.Game.Players) {
		return ""
	}
	return ctx.Game.Players[player]
}

// Emit appends a violation against the given player at the current turn.
func (ctx *AnalysisContext) Emit(kind model.ViolationKind, player int, severity model.Severity, description string, card *model.DeckCard) {
	v := model.RuleViolation{
		Turn:        ctx.Turn,
		Player:      ctx.PlayerName(player),
		Kind:        kind,
		Severity:    severity,
		Description: description,
		Card:        card,
	}
	ctx.Violations = append(ctx.Violations, v)
	if ctx.Logger != nil {
		ctx.Logger.WithFields(logrus.Fields{
			"turn":   v.Turn,
			"player": v.Player,
			"kind":   v.Kind,
		}).Debug("violation emitted")
	}
}

// EmitAtTurn appends a violation against player at an explicit earlier turn
// (used when a checker blames a prior clue-giver, e.g. BadPlayClue, WrongPrompt).
func (ctx *AnalysisContext) EmitAtTurn(turn int, kind model.ViolationKind, player int, severity model.Severity, description string, card *model.DeckCard) {
	v := model.RuleViolation{
		Turn:        turn,
		Player:      ctx.PlayerName(player),
		Kind:        kind,
		Severity:    severity,
		Description: description,
		Card:        card,
	}
	ctx.Violations = append(ctx.Violations, v)
	if ctx.Logger != nil {
		ctx.Logger.WithFields(logrus.Fields{
			"turn":   v.Turn,
			"player": v.Player,
			"kind":   v.Kind,
		}).Debug("violation emitted")
	}
}

// ActionAt returns the action at the given index and whether it exists.
func (ctx *AnalysisContext) ActionAt(index int) (model.GameAction, bool) {
	if index < 0 || index >= len(ctx.Game.Actions) {
		return model.GameAction{}, false
	}
	return ctx.Game.Actions[index], true
}

// PlayerAt returns which player acts on the given action index.
func (ctx *AnalysisContext) PlayerAt(actionIndex int) int {
	return actionIndex % ctx.Game.NumPlayers()
}
