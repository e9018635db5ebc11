package fixture

import "github.com/riskibarqy/matchstudy/internal/domain/market"

// Info identifies the fixture under analysis.
type Info struct {
	HomeTeamID string `json:"home_team_id,omitempty"`
	AwayTeamID string `json:"away_team_id,omitempty"`
	LeagueID   string `json:"league_id,omitempty"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	LeagueName string `json:"league_name,omitempty"`
}

// Odds is the opening quote row for the fixture. Prices and lines are kept as
// read; the line fields are normalized on demand.
type Odds struct {
	HomePrice       string `json:"home_price"`
	HandicapLineRaw string `json:"handicap_line_raw"`
	AwayPrice       string `json:"away_price"`
	OverPrice       string `json:"over_price"`
	GoalLineRaw     string `json:"goal_line_raw"`
	UnderPrice      string `json:"under_price"`
}

// HandicapLine returns the parsed handicap, quoted for the home side.
func (o Odds) HandicapLine() (float64, bool) {
	return market.ParseLine(o.HandicapLineRaw)
}

func (o Odds) GoalLine() (float64, bool) {
	return market.ParseLine(o.GoalLineRaw)
}

// Favorite returns the team favoured by the handicap, "" for a level or
// unreadable line.
func (o Odds) Favorite(info Info) string {
	line, ok := o.HandicapLine()
	if !ok {
		return ""
	}
	return market.FavoriteFor(line, info.HomeTeam, info.AwayTeam)
}
