// Package hanabi analyzes a recorded Hanabi game for rule violations and
// convention breaks, replaying it turn by turn against the pluggable
// tracker/checker pipeline in internal/engine (spec.md §1, §2).
package hanabi

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lukev/hanabi-analyzer/internal/checkers"
	"github.com/lukev/hanabi-analyzer/internal/engine"
	"github.com/lukev/hanabi-analyzer/internal/model"
	"github.com/lukev/hanabi-analyzer/internal/simulate"
	"github.com/lukev/hanabi-analyzer/internal/trackers"
)

// Re-exported domain types, so callers never need to import internal/model
// directly (mirrors the teacher's own type-alias pattern for its game state).
type (
	Game            = model.Game
	GameAction      = model.GameAction
	GameState       = model.GameState
	DeckCard        = model.DeckCard
	CardInHand      = model.CardInHand
	ClueMarks       = model.ClueMarks
	RuleViolation   = model.RuleViolation
	AnalysisResult  = model.AnalysisResult
	AnalysisSummary = model.AnalysisSummary
	AnalyzerOptions = model.AnalyzerOptions
	ConventionLevel = model.ConventionLevel
	ViolationKind   = model.ViolationKind
	Severity        = model.Severity
	Suit            = model.Suit
)

const (
	Play      = model.Play
	Discard   = model.Discard
	ColorClue = model.ColorClue
	RankClue  = model.RankClue
)

const (
	L0_Basic        = model.L0_Basic
	L1_Beginner     = model.L1_Beginner
	L2_Intermediate = model.L2_Intermediate
	L3_Advanced     = model.L3_Advanced
)

// Analyzer wraps a configured orchestrator so repeated Analyze calls reuse
// the same tracker/checker registration and logger.
type Analyzer struct {
	orchestrator *engine.Orchestrator
}

// NewAnalyzer builds an Analyzer with the full fixed tracker and checker
// registries. A nil logger installs a silent discard logger.
func NewAnalyzer(logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		orchestrator: engine.New(trackers.All(), checkers.All(), logger),
	}
}

// Analyze replays game deterministically, then runs every applicable tracker
// and checker per action, returning the violations enabled at opts.Level
// (spec.md §1, §4.3, §6).
func Analyze(game *Game, opts AnalyzerOptions) (*AnalysisResult, error) {
	return NewAnalyzer(nil).Analyze(game, opts)
}

// Analyze is the instance form of the package-level Analyze, letting callers
// reuse one Analyzer (and its logger) across many games.
func (a *Analyzer) Analyze(game *Game, opts AnalyzerOptions) (*AnalysisResult, error) {
	states, err := simulate.Simulate(game)
	if err != nil {
		return nil, err
	}

	violations := a.orchestrator.Analyze(game, states, opts)

	return &AnalysisResult{
		ID:         uuid.New(),
		States:     states,
		Violations: violations,
		Summary:    model.Summarize(violations),
	}, nil
}
