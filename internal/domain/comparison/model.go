// Package comparison reads the indirect-comparison panels of a match page:
// each fixture team against the other team's last opponent.
package comparison

// Pair is one statistic for both sides of a panel's match.
type Pair struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type Stats struct {
	Shots            Pair `json:"shots"`
	ShotsOnTarget    Pair `json:"shots_on_target"`
	Attacks          Pair `json:"attacks"`
	DangerousAttacks Pair `json:"dangerous_attacks"`
}

// Panel is one parsed comparison panel. Venue is "H" or "A" for the main
// team, as printed on the page.
type Panel struct {
	MainTeam    string  `json:"main_team"`
	Result      string  `json:"result"`
	ScoreRaw    string  `json:"score_raw"`
	HandicapRaw string  `json:"handicap_raw"`
	Handicap    string  `json:"handicap"`
	HandicapNum float64 `json:"handicap_num"`
	HasHandicap bool    `json:"has_handicap"`
	Venue       string  `json:"venue"`
	Stats       Stats   `json:"stats"`
}
