package model

import "fmt"

// Severity classifies how serious a RuleViolation is.
type Severity string

const (
	Critical Severity = "Critical"
	Warning  Severity = "Warning"
	Info     Severity = "Info"
)

// ConventionLevel gates which checkers run. Higher levels subsume lower
// levels' enabled checks (spec.md §3, §6).
type ConventionLevel int

const (
	L0_Basic ConventionLevel = iota
	L1_Beginner
	L2_Intermediate
	L3_Advanced
)

func (l ConventionLevel) String() string {
	switch l {
	case L0_Basic:
		return "L0_Basic"
	case L1_Beginner:
		return "L1_Beginner"
	case L2_Intermediate:
		return "L2_Intermediate"
	case L3_Advanced:
		return "L3_Advanced"
	default:
		return fmt.Sprintf("ConventionLevel(%d)", int(l))
	}
}

// ViolationKind is a stable string identifier for a rule violation, observed
// by tests and UIs across versions (spec.md §6).
type ViolationKind string

const (
	Misplay                ViolationKind = "Misplay"
	BadDiscard5            ViolationKind = "BadDiscard5"
	BadDiscardCritical     ViolationKind = "BadDiscardCritical"
	IllegalDiscard         ViolationKind = "IllegalDiscard"
	GoodTouchViolation     ViolationKind = "GoodTouchViolation"
	MCVPViolation          ViolationKind = "MCVPViolation"
	MissedSave             ViolationKind = "MissedSave"
	MisreadSave            ViolationKind = "MisreadSave"
	MissedPrompt           ViolationKind = "MissedPrompt"
	MissedFinesse          ViolationKind = "MissedFinesse"
	BrokenFinesse          ViolationKind = "BrokenFinesse"
	FiveStall              ViolationKind = "FiveStall"
	StompedFinesse         ViolationKind = "StompedFinesse"
	WrongPrompt            ViolationKind = "WrongPrompt"
	DoubleDiscardAvoidance ViolationKind = "DoubleDiscardAvoidance"
	BadPlayClue            ViolationKind = "BadPlayClue"
	FixClue                ViolationKind = "FixClue"
	SarcasticDiscard       ViolationKind = "SarcasticDiscard"
	WrongOnesOrder         ViolationKind = "WrongOnesOrder"
	MisplayCostViolation   ViolationKind = "MisplayCostViolation"
	InformationLock        ViolationKind = "InformationLock"
)

// RuleViolation is a single emitted convention or rule break.
type RuleViolation struct {
	Turn        int           `json:"turn"`
	Player      string        `json:"player"`
	Kind        ViolationKind `json:"kind"`
	Severity    Severity      `json:"severity"`
	Description string        `json:"description"`
	Card        *DeckCard     `json:"card,omitempty"`
}

// levelKinds lists the kinds introduced AT each level (not cumulative); see
// EnabledViolations for the cumulative union used by the orchestrator.
var levelKinds = map[ConventionLevel][]ViolationKind{
	L0_Basic: {
		Misplay, BadDiscard5, BadDiscardCritical, IllegalDiscard,
	},
	L1_Beginner: {
		GoodTouchViolation, MCVPViolation, MissedSave, MisreadSave,
		MissedPrompt, MissedFinesse, BrokenFinesse,
	},
	L2_Intermediate: {
		FiveStall, StompedFinesse, WrongPrompt, DoubleDiscardAvoidance, BadPlayClue,
	},
	L3_Advanced: {
		FixClue, SarcasticDiscard, WrongOnesOrder, MisplayCostViolation, InformationLock,
	},
}

var allLevelsInOrder = []ConventionLevel{L0_Basic, L1_Beginner, L2_Intermediate, L3_Advanced}

// EnabledViolations returns the union of violation kinds enabled at the given
// level and every level below it (spec.md §6).
func EnabledViolations(level ConventionLevel) map[ViolationKind]bool {
	enabled := make(map[ViolationKind]bool)
	for _, l := range allLevelsInOrder {
		if l > level {
			break
		}
		for _, k := range levelKinds[l] {
			enabled[k] = true
		}
	}
	return enabled
}

// AnalyzerOptions configures which checkers run.
type AnalyzerOptions struct {
	Level ConventionLevel `json:"level"`
}

// AnalysisSummary aggregates a violation list for quick reporting.
type AnalysisSummary struct {
	TotalViolations int                   `json:"totalViolations"`
	BySeverity      map[Severity]int      `json:"bySeverity"`
	ByType          map[ViolationKind]int `json:"byType"`
	ByPlayer        map[string]int        `json:"byPlayer"`
}

// Summarize builds an AnalysisSummary from a finished violation list.
func Summarize(violations []RuleViolation) AnalysisSummary {
	summary := AnalysisSummary{
		TotalViolations: len(violations),
		BySeverity:      make(map[Severity]int),
		ByType:          make(map[ViolationKind]int),
		ByPlayer:        make(map[string]int),
	}
	for _, v := range violations {
		summary.BySeverity[v.Severity]++
		summary.ByType[v.Kind]++
		summary.ByPlayer[v.Player]++
	}
	return summary
}
