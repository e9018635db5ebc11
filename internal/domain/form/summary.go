package form

import (
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/riskibarqy/matchstudy/internal/domain/precedent"
)

// Summary counts how often a team covered its own historical lines.
type Summary struct {
	Covered    int     `json:"covered"`
	NotCovered int     `json:"not_covered"`
	Push       int     `json:"push"`
	Total      int     `json:"total"`
	PctCovered float64 `json:"pct_covered"`
}

// GoalSummary counts goal-line results against each record's own goal line.
type GoalSummary struct {
	Over  int `json:"over"`
	Under int `json:"under"`
	Push  int `json:"push"`
	Total int `json:"total"`
}

// Rating grades a coverage percentage.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingWeak      Rating = "weak"
)

// Verdict says whether recent coverage favours backing the team.
type Verdict string

const (
	VerdictFavourable   Verdict = "favourable"
	VerdictUnfavourable Verdict = "unfavourable"
	VerdictNeutral      Verdict = "neutral"
)

// Bands are the lower bounds, in percent, of each rating.
type Bands struct {
	Excellent float64 `yaml:"excellent" json:"excellent"`
	Good      float64 `yaml:"good" json:"good"`
	Average   float64 `yaml:"average" json:"average"`
}

func DefaultBands() Bands {
	return Bands{Excellent: 70, Good: 60, Average: 50}
}

// Recent returns up to window records where team played on side, newest
// first. A non-positive window returns every match.
func Recent(records []matchrecord.MatchRecord, team string, side precedent.Side, window int) []matchrecord.MatchRecord {
	out := make([]matchrecord.MatchRecord, 0, len(records))
	for _, record := range precedent.SortByDateDesc(records) {
		if !playedOn(record, team, side) {
			continue
		}
		out = append(out, record)
		if window > 0 && len(out) == window {
			break
		}
	}
	return out
}

// TeamCoverage settles record against its own handicap line from team's
// point of view.
func TeamCoverage(team string, record matchrecord.MatchRecord) market.HandicapResult {
	line, ok := market.ParseLine(record.HandicapLineRaw)
	if !ok {
		return market.HandicapResult{Outcome: market.CoverageIndeterminate}
	}
	side := teamSide(record, team)
	if side == "" {
		return market.HandicapResult{Outcome: market.CoverageIndeterminate}
	}

	own := record.HomeTeam
	if side == precedent.SideAway {
		own = record.AwayTeam
	}

	favorite := market.FavoriteFor(line, record.HomeTeam, record.AwayTeam)
	result := market.ClassifyHandicap(record.ScoreRaw, line, favorite, record.HomeTeam, record.AwayTeam, own)
	if favorite == "" || strings.EqualFold(favorite, own) {
		return result
	}
	return invert(result)
}

// Summarize classifies every record for team. Indeterminate records are not
// counted in Total.
func Summarize(team string, records []matchrecord.MatchRecord) Summary {
	var s Summary
	for _, record := range records {
		switch TeamCoverage(team, record).Outcome {
		case market.Covered:
			s.Covered++
		case market.NotCovered:
			s.NotCovered++
		case market.CoveragePush:
			s.Push++
		default:
			continue
		}
		s.Total++
	}
	if s.Total > 0 {
		s.PctCovered = float64(s.Covered) / float64(s.Total) * 100
	}
	return s
}

// Rating grades PctCovered against bands.
func (s Summary) Rating(bands Bands) Rating {
	switch {
	case s.PctCovered >= bands.Excellent:
		return RatingExcellent
	case s.PctCovered >= bands.Good:
		return RatingGood
	case s.PctCovered >= bands.Average:
		return RatingAverage
	default:
		return RatingWeak
	}
}

func (s Summary) Verdict() Verdict {
	switch {
	case s.Covered > s.NotCovered:
		return VerdictFavourable
	case s.NotCovered > s.Covered:
		return VerdictUnfavourable
	default:
		return VerdictNeutral
	}
}

// SummarizeGoals settles every record against its own goal line.
func SummarizeGoals(records []matchrecord.MatchRecord) GoalSummary {
	var s GoalSummary
	for _, record := range records {
		line, ok := market.ParseLine(record.GoalLineRaw)
		if !ok {
			continue
		}
		switch market.ClassifyGoalLine(record.ScoreRaw, line).Outcome {
		case market.Over:
			s.Over++
		case market.Under:
			s.Under++
		case market.GoalPush:
			s.Push++
		default:
			continue
		}
		s.Total++
	}
	return s
}

// teamSide finds where team played. An exact case-insensitive name wins over
// containment, so a team is not mistaken for an opponent whose name extends
// its own.
func teamSide(record matchrecord.MatchRecord, team string) precedent.Side {
	needle := strings.ToLower(strings.TrimSpace(team))
	if needle == "" {
		return ""
	}
	home := strings.ToLower(strings.TrimSpace(record.HomeTeam))
	away := strings.ToLower(strings.TrimSpace(record.AwayTeam))
	switch {
	case home == needle:
		return precedent.SideHome
	case away == needle:
		return precedent.SideAway
	case strings.Contains(home, needle):
		return precedent.SideHome
	case strings.Contains(away, needle):
		return precedent.SideAway
	default:
		return ""
	}
}

// playedOn checks only the requested side unless the other side is an exact
// match for team.
func playedOn(record matchrecord.MatchRecord, team string, side precedent.Side) bool {
	needle := strings.ToLower(strings.TrimSpace(team))
	if needle == "" {
		return false
	}
	own, other := record.HomeTeam, record.AwayTeam
	if side == precedent.SideAway {
		own, other = other, own
	}
	own = strings.ToLower(strings.TrimSpace(own))
	switch {
	case own == needle:
		return true
	case strings.ToLower(strings.TrimSpace(other)) == needle:
		return false
	default:
		return strings.Contains(own, needle)
	}
}

func invert(result market.HandicapResult) market.HandicapResult {
	if result.Covered == nil {
		return result
	}
	flipped := !*result.Covered
	if flipped {
		return market.HandicapResult{Outcome: market.Covered, Covered: &flipped}
	}
	return market.HandicapResult{Outcome: market.NotCovered, Covered: &flipped}
}
