package fixture

import "github.com/riskibarqy/matchstudy/internal/domain/page"

// Source exposes the parts of a page the fixture readers need.
type Source interface {
	Script(marker string) (string, bool)
	OddsRow() (page.Row, bool)
}

// LoadInfo reads fixture identity from src.
func LoadInfo(src Source) (Info, bool) {
	script, ok := src.Script(ScriptMarker)
	if !ok {
		return Info{}, false
	}
	return ParseInfo(script)
}

// LoadOdds reads the opening quote row from src.
func LoadOdds(src Source) (Odds, bool) {
	row, ok := src.OddsRow()
	if !ok {
		return Odds{}, false
	}
	return ExtractOdds(row)
}
