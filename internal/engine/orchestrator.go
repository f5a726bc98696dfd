package engine

import (
	"github.com/lukev/hanabi-analyzer/internal/model"
	"github.com/sirupsen/logrus"
)

// Orchestrator drives the action loop: for each action it binds the
// context, runs applicable trackers in registration order, then runs
// applicable checkers in registration order, then filters the accumulated
// violations by the enabled-violation set for the configured level
// (spec.md §4.3).
type Orchestrator struct {
	Trackers []Tracker
	Checkers []Checker
	Logger   *logrus.Logger
}

// New builds an Orchestrator from a fixed tracker/checker registration list.
// A nil logger installs a discard logger, matching the "library stays quiet"
// ambient-logging convention (SPEC_FULL.md §2).
func New(trackers []Tracker, checkers []Checker, logger *logrus.Logger) *Orchestrator {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Orchestrator{Trackers: trackers, Checkers: checkers, Logger: logger}
}

// Analyze runs the full pipeline over a pre-simulated state history and
// returns the violations enabled at opts.Level (spec.md §4.3, §6).
func (o *Orchestrator) Analyze(game *model.Game, states []*model.GameState, opts model.AnalyzerOptions) []model.RuleViolation {
	ctx := &AnalysisContext{
		Game:        game,
		States:      states,
		Options:     opts,
		Logger:      o.Logger,
		IsEarlyGame: true,
	}

	numPlayers := game.NumPlayers()
	for i, action := range game.Actions {
		ctx.Action = action
		ctx.ActionIndex = i
		ctx.Turn = i + 1
		ctx.CurrentPlayer = i % numPlayers
		ctx.StateBefore = states[i]
		ctx.StateAfter = states[i+1]

		o.Logger.WithFields(logrus.Fields{
			"turn":   ctx.Turn,
			"kind":   action.Kind,
			"player": ctx.PlayerName(ctx.CurrentPlayer),
		}).Debug("processing action")

		for _, tracker := range o.Trackers {
			if tracker.AppliesTo(action.Kind) {
				tracker.Track(ctx)
			}
		}
		for _, checker := range o.Checkers {
			if checker.Level() <= opts.Level && checker.AppliesTo(action.Kind) {
				checker.Check(ctx)
			}
		}
	}

	enabled := model.EnabledViolations(opts.Level)
	filtered := make([]model.RuleViolation, 0, len(ctx.Violations))
	for _, v := range ctx.Violations {
		if enabled[v.Kind] {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
