package leaguestanding

import "github.com/riskibarqy/matchstudy/internal/domain/page"

// Source exposes the standings and over/under parts of a page.
type Source interface {
	Standings() []page.StandingsBlock
	OverUnder(table page.TableID) (page.OverUnderBlock, bool)
}

func LoadStanding(src Source, team string) (Standing, bool) {
	return Extract(src.Standings(), team)
}

// LoadOverUnder reads the over/under summary attached to a history table.
func LoadOverUnder(src Source, table page.TableID) (OverUnderSplit, bool) {
	block, ok := src.OverUnder(table)
	if !ok {
		return OverUnderSplit{}, false
	}
	return ExtractOverUnder(block)
}
