package leaguestanding

// Record is one played/won/drawn/lost/goals line of a standings table.
type Record struct {
	Played       string `json:"played"`
	Won          string `json:"won"`
	Draw         string `json:"draw"`
	Lost         string `json:"lost"`
	GoalsFor     string `json:"goals_for"`
	GoalsAgainst string `json:"goals_against"`
}

// Standing is a team's full-time league record as shown on the page.
// VenueType is "home" or "away", matching the block the team was found in.
type Standing struct {
	Team      string  `json:"team"`
	Position  string  `json:"position,omitempty"`
	VenueType string  `json:"venue_type"`
	Total     *Record `json:"total,omitempty"`
	Venue     *Record `json:"venue,omitempty"`
}

// OverUnderSplit is the over/push/under share of a team's recent matches.
type OverUnderSplit struct {
	Games    int     `json:"games"`
	OverPct  float64 `json:"over_pct"`
	PushPct  float64 `json:"push_pct"`
	UnderPct float64 `json:"under_pct"`
}
