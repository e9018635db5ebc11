package analysis

import (
	"github.com/riskibarqy/matchstudy/internal/domain/comparison"
	"github.com/riskibarqy/matchstudy/internal/domain/fixture"
	"github.com/riskibarqy/matchstudy/internal/domain/form"
	"github.com/riskibarqy/matchstudy/internal/domain/leaguestanding"
	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/riskibarqy/matchstudy/internal/domain/precedent"
)

// Section holds one part of a report. Unavailable sections carry the reason
// instead of a value.
type Section[T any] struct {
	Available bool   `json:"available"`
	Value     T      `json:"value"`
	Reason    string `json:"reason,omitempty"`
}

func Some[T any](value T) Section[T] {
	return Section[T]{Available: true, Value: value}
}

func Missing[T any](reason string) Section[T] {
	return Section[T]{Reason: reason}
}

// CurrentLines are the fixture's opening market lines.
type CurrentLines struct {
	Odds     fixture.Odds `json:"odds"`
	Handicap string       `json:"handicap"`
	GoalLine string       `json:"goal_line"`
	Favorite string       `json:"favorite,omitempty"`
}

// Precedent is a historical match settled against the current lines.
type Precedent struct {
	Record       matchrecord.MatchRecord `json:"record"`
	HandicapLine string                  `json:"handicap_line"`
	GoalLine     string                  `json:"goal_line"`
	Handicap     market.HandicapResult   `json:"handicap"`
	Goals        market.GoalResult       `json:"goals"`
	Shift        market.Shift            `json:"shift"`
	SameAsVenue  bool                    `json:"same_as_venue,omitempty"`
}

// IndirectPrecedent compares a fixture team with the other team's recent
// opponent.
type IndirectPrecedent struct {
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	MainSide  string    `json:"main_side"`
	Precedent Precedent `json:"precedent"`
}

// CrossoverPrecedent is a match between the two teams' flagged rivals.
type CrossoverPrecedent struct {
	HomeRival precedent.Rival `json:"home_rival"`
	AwayRival precedent.Rival `json:"away_rival"`
	Precedent Precedent       `json:"precedent"`
}

// TeamForm is a team's recent coverage on its fixture side.
type TeamForm struct {
	Team    string              `json:"team"`
	Side    precedent.Side      `json:"side"`
	Summary form.Summary        `json:"summary"`
	Rating  form.Rating         `json:"rating"`
	Verdict form.Verdict        `json:"verdict"`
	Goals   form.GoalSummary    `json:"goals"`
	Trend   Section[form.Trend] `json:"trend"`
}

// Report is the full analysis of one fixture.
type Report struct {
	FixtureID      string                                 `json:"fixture_id"`
	Fixture        fixture.Info                           `json:"fixture"`
	Lines          Section[CurrentLines]                  `json:"lines"`
	SameVenue      Section[Precedent]                     `json:"same_venue"`
	MostRecent     Section[Precedent]                     `json:"most_recent"`
	LastHome       Section[Precedent]                     `json:"last_home"`
	LastAway       Section[Precedent]                     `json:"last_away"`
	IndirectHome   Section[IndirectPrecedent]             `json:"indirect_home"`
	IndirectAway   Section[IndirectPrecedent]             `json:"indirect_away"`
	Crossover      Section[CrossoverPrecedent]            `json:"crossover"`
	HomeForm       Section[TeamForm]                      `json:"home_form"`
	AwayForm       Section[TeamForm]                      `json:"away_form"`
	HomeStanding   Section[leaguestanding.Standing]       `json:"home_standing"`
	AwayStanding   Section[leaguestanding.Standing]       `json:"away_standing"`
	HomeOverUnder  Section[leaguestanding.OverUnderSplit] `json:"home_over_under"`
	AwayOverUnder  Section[leaguestanding.OverUnderSplit] `json:"away_over_under"`
	HomeComparison Section[comparison.Panel]              `json:"home_comparison"`
	AwayComparison Section[comparison.Panel]              `json:"away_comparison"`
}

// UnavailableSections lists the names of sections that carry no value, in
// report order.
func (r Report) UnavailableSections() []string {
	checks := []struct {
		name      string
		available bool
	}{
		{"lines", r.Lines.Available},
		{"same_venue", r.SameVenue.Available},
		{"most_recent", r.MostRecent.Available},
		{"last_home", r.LastHome.Available},
		{"last_away", r.LastAway.Available},
		{"indirect_home", r.IndirectHome.Available},
		{"indirect_away", r.IndirectAway.Available},
		{"crossover", r.Crossover.Available},
		{"home_form", r.HomeForm.Available},
		{"away_form", r.AwayForm.Available},
		{"home_standing", r.HomeStanding.Available},
		{"away_standing", r.AwayStanding.Available},
		{"home_over_under", r.HomeOverUnder.Available},
		{"away_over_under", r.AwayOverUnder.Available},
		{"home_comparison", r.HomeComparison.Available},
		{"away_comparison", r.AwayComparison.Available},
	}

	var out []string
	for _, c := range checks {
		if !c.available {
			out = append(out, c.name)
		}
	}
	return out
}
