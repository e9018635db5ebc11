package analysis

import (
	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
)

// Market is the current fixture's quote that precedents are settled against.
type Market struct {
	HomeTeam    string
	Handicap    float64
	HasHandicap bool
	GoalLine    float64
	HasGoalLine bool
	Favorite    string
}

// Settle classifies record against the current market. Lines that cannot be
// read produce indeterminate results.
func Settle(record matchrecord.MatchRecord, m Market) Precedent {
	p := Precedent{
		Record:       record,
		HandicapLine: market.FormatText(record.HandicapLineRaw, market.FormatDisplay),
		GoalLine:     market.FormatText(record.GoalLineRaw, market.FormatDisplay),
		Handicap:     market.HandicapResult{Outcome: market.CoverageIndeterminate},
		Goals:        market.GoalResult{Outcome: market.GoalIndeterminate},
	}

	if m.HasHandicap {
		p.Handicap = market.ClassifyHandicap(record.ScoreRaw, m.Handicap, m.Favorite, record.HomeTeam, record.AwayTeam, m.HomeTeam)
		if historic, ok := market.ParseLine(record.HandicapLineRaw); ok {
			p.Shift = market.CompareFavoritism(historic, m.Handicap, record.HomeTeam, record.AwayTeam, m.Favorite)
		}
	}
	if m.HasGoalLine {
		p.Goals = market.ClassifyGoalLine(record.ScoreRaw, m.GoalLine)
	}
	return p
}
