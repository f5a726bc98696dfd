package model

import "github.com/google/uuid"

// ClueHistoryEntry records one clue given during the game, accumulated
// across the whole analysis (spec.md §3, §4.5).
type ClueHistoryEntry struct {
	Turn               int
	Giver              int
	Target             int
	ClueKind           ActionKind
	ClueValue          int
	TouchedDeckIndices []int
	FocusDeckIndex     *int
	ChopDeckIndex      *int
}

// PendingFinesse tracks a finesse setup clue until it resolves, is stomped,
// or times out at its deadline (spec.md §3, §4.4.2, §4.5).
type PendingFinesse struct {
	ID                         uuid.UUID
	SetupTurn                  int
	Giver                      int
	Target                     int
	FinessePlayer              int
	NeededSuit                 Suit
	NeededRank                 int
	IsResolved                 bool
	WasStomped                 bool
	ResponseDeadlineActionIndex int
}

// AnalysisResult is the top-level return value of Analyze (spec.md §6).
type AnalysisResult struct {
	ID         uuid.UUID       `json:"id"`
	States     []*GameState    `json:"states"`
	Violations []RuleViolation `json:"violations"`
	Summary    AnalysisSummary `json:"summary"`
}
