package market

import (
	"math"
	"strconv"
	"strings"
)

// Coverage is the result of settling a handicap line against a scoreline.
type Coverage int

const (
	CoverageIndeterminate Coverage = iota
	Covered
	NotCovered
	CoveragePush
)

func (c Coverage) String() string {
	switch c {
	case Covered:
		return "COVERED"
	case NotCovered:
		return "NOT_COVERED"
	case CoveragePush:
		return "PUSH"
	default:
		return "INDETERMINATE"
	}
}

func (c Coverage) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// GoalOutcome is the result of settling a goal line against a scoreline.
type GoalOutcome int

const (
	GoalIndeterminate GoalOutcome = iota
	Over
	Under
	GoalPush
)

func (g GoalOutcome) String() string {
	switch g {
	case Over:
		return "OVER"
	case Under:
		return "UNDER"
	case GoalPush:
		return "PUSH"
	default:
		return "INDETERMINATE"
	}
}

func (g GoalOutcome) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// HandicapResult pairs a coverage label with the favourite-covered flag.
// Covered is nil for push and indeterminate results.
type HandicapResult struct {
	Outcome Coverage `json:"outcome"`
	Covered *bool    `json:"covered"`
}

// GoalResult pairs a goal-line label with the over flag.
type GoalResult struct {
	Outcome GoalOutcome `json:"outcome"`
	Over    *bool       `json:"over"`
}

// UnknownScore marks a scoreline that could not be read.
const UnknownScore = "?-?"

const (
	coverTolerance = 0.05
	lineEpsilon    = 1e-9
)

// ParseScore splits "H-A" into two non-negative goal counts.
func ParseScore(raw string) (int, int, bool) {
	left, right, found := strings.Cut(raw, "-")
	if !found || strings.Contains(right, "-") {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil || home < 0 {
		return 0, 0, false
	}
	away, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil || away < 0 {
		return 0, 0, false
	}
	return home, away, true
}

// IsZeroLine reports whether line is a level (pick'em) handicap.
func IsZeroLine(line float64) bool {
	return math.Abs(line) < lineEpsilon
}

// ClassifyHandicap settles line for favorite against a historical score.
//
// A zero line has no favourite, so the result is oriented on currentHome:
// when the record was played with currentHome at home a home win covers,
// otherwise an away win covers.
func ClassifyHandicap(score string, line float64, favorite, recordHome, recordAway, currentHome string) HandicapResult {
	home, away, ok := ParseScore(score)
	if !ok {
		return HandicapResult{Outcome: CoverageIndeterminate}
	}

	if IsZeroLine(line) {
		margin := home - away
		if !strings.EqualFold(currentHome, recordHome) {
			margin = -margin
		}
		switch {
		case margin > 0:
			return covered()
		case margin < 0:
			return notCovered()
		default:
			return HandicapResult{Outcome: CoveragePush}
		}
	}

	var margin int
	switch {
	case favorite != "" && strings.EqualFold(favorite, recordHome):
		margin = home - away
	case favorite != "" && strings.EqualFold(favorite, recordAway):
		margin = away - home
	default:
		return HandicapResult{Outcome: CoverageIndeterminate}
	}

	diff := float64(margin) - math.Abs(line)
	switch {
	case diff > coverTolerance:
		return covered()
	case diff < -coverTolerance:
		return notCovered()
	default:
		return HandicapResult{Outcome: CoveragePush}
	}
}

// ClassifyGoalLine settles the combined score against goalLine.
func ClassifyGoalLine(score string, goalLine float64) GoalResult {
	home, away, ok := ParseScore(score)
	if !ok {
		return GoalResult{Outcome: GoalIndeterminate}
	}

	total := float64(home + away)
	switch {
	case total > goalLine:
		v := true
		return GoalResult{Outcome: Over, Over: &v}
	case total < goalLine:
		v := false
		return GoalResult{Outcome: Under, Over: &v}
	default:
		return GoalResult{Outcome: GoalPush}
	}
}

func covered() HandicapResult {
	v := true
	return HandicapResult{Outcome: Covered, Covered: &v}
}

func notCovered() HandicapResult {
	v := false
	return HandicapResult{Outcome: NotCovered, Covered: &v}
}
