package fixture

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
)

// ScriptMarker identifies the script block carrying fixture metadata.
const ScriptMarker = "var _matchInfo = "

var (
	homeIDPattern   = regexp.MustCompile(`hId:\s*parseInt\('(\d+)'\)`)
	awayIDPattern   = regexp.MustCompile(`gId:\s*parseInt\('(\d+)'\)`)
	leagueIDPattern = regexp.MustCompile(`sclassId:\s*parseInt\('(\d+)'\)`)
	homeNamePattern = regexp.MustCompile(`hName:\s*'([^']*)'`)
	awayNamePattern = regexp.MustCompile(`gName:\s*'([^']*)'`)
	leaguePattern   = regexp.MustCompile(`lName:\s*'([^']*)'`)
)

// ParseInfo reads fixture identity from the metadata script. It fails when
// either team name is missing.
func ParseInfo(script string) (Info, bool) {
	info := Info{
		HomeTeamID: find(homeIDPattern, script),
		AwayTeamID: find(awayIDPattern, script),
		LeagueID:   find(leagueIDPattern, script),
		HomeTeam:   find(homeNamePattern, script),
		AwayTeam:   find(awayNamePattern, script),
		LeagueName: find(leaguePattern, script),
	}
	if info.HomeTeam == "" || info.AwayTeam == "" {
		return Info{}, false
	}
	return info, true
}

func find(pattern *regexp.Regexp, content string) string {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

const (
	oddsHomePrice  = 2
	oddsHandicap   = 3
	oddsAwayPrice  = 4
	oddsOverPrice  = 8
	oddsGoalLine   = 9
	oddsUnderPrice = 10
	oddsMinCells   = 11
)

// ExtractOdds reads the opening quote row. Rows with fewer than eleven cells
// are rejected.
func ExtractOdds(row page.Row) (Odds, bool) {
	if row == nil || row.CellCount() < oddsMinCells {
		return Odds{}, false
	}
	token := func(idx int) string {
		cell, _ := row.Cell(idx)
		return matchrecord.LineToken(cell)
	}
	return Odds{
		HomePrice:       token(oddsHomePrice),
		HandicapLineRaw: token(oddsHandicap),
		AwayPrice:       token(oddsAwayPrice),
		OverPrice:       token(oddsOverPrice),
		GoalLineRaw:     token(oddsGoalLine),
		UnderPrice:      token(oddsUnderPrice),
	}, true
}
