package comparison

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/market"
	"github.com/riskibarqy/matchstudy/internal/domain/page"
)

var (
	resultLabel   = regexp.MustCompile(`Res\s*:`)
	handicapLabel = regexp.MustCompile(`AH\s*:`)
	venueLabel    = regexp.MustCompile(`Localía de`)
)

const (
	titleSeparator = " vs. "
	statRows       = 4
	statCells      = 3
)

// Source exposes the comparison panels of a page.
type Source interface {
	Comparisons() []page.ComparisonBlock
}

// Load reads the home and away panels. Both are reported missing when the
// page carries fewer than two panels.
func Load(src Source) (home Panel, hasHome bool, away Panel, hasAway bool) {
	blocks := src.Comparisons()
	if len(blocks) < 2 {
		return Panel{}, false, Panel{}, false
	}
	home, hasHome = Extract(blocks[0])
	away, hasAway = Extract(blocks[1])
	return home, hasHome, away, hasAway
}

// Extract parses one panel. The title, the three labelled values and four
// statistics rows are all required.
func Extract(block page.ComparisonBlock) (Panel, bool) {
	title := strings.TrimSpace(block.Title)
	if title == "" {
		return Panel{}, false
	}
	mainTeam, _, _ := strings.Cut(title, titleSeparator)

	result, ok := labelledValue(block.Tokens, resultLabel)
	if !ok {
		return Panel{}, false
	}
	handicap, ok := labelledValue(block.Tokens, handicapLabel)
	if !ok {
		return Panel{}, false
	}
	venue, ok := labelledValue(block.Tokens, venueLabel)
	if !ok {
		return Panel{}, false
	}
	stats, ok := extractStats(block.Stats)
	if !ok {
		return Panel{}, false
	}

	panel := Panel{
		MainTeam:    strings.TrimSpace(mainTeam),
		Result:      result,
		ScoreRaw:    strings.ReplaceAll(strings.ReplaceAll(result, " ", ""), ":", "-"),
		HandicapRaw: handicap,
		Handicap:    market.FormatText(handicap, market.FormatDisplay),
		Venue:       venue,
		Stats:       stats,
	}
	panel.HandicapNum, panel.HasHandicap = market.ParseLine(handicap)
	return panel, true
}

// labelledValue returns the first span after the first token matching label.
func labelledValue(tokens []page.PanelToken, label *regexp.Regexp) (string, bool) {
	for i, token := range tokens {
		if !label.MatchString(token.Text) {
			continue
		}
		for _, next := range tokens[i+1:] {
			if next.Span {
				return strings.TrimSpace(next.Text), true
			}
		}
		return "", false
	}
	return "", false
}

func extractStats(rows [][]string) (Stats, bool) {
	if len(rows) < statRows {
		return Stats{}, false
	}
	pairs := make([]Pair, statRows)
	for i := range pairs {
		if len(rows[i]) < statCells {
			return Stats{}, false
		}
		pairs[i] = Pair{Home: rows[i][0], Away: rows[i][2]}
	}
	return Stats{
		Shots:            pairs[0],
		ShotsOnTarget:    pairs[1],
		Attacks:          pairs[2],
		DangerousAttacks: pairs[3],
	}, true
}
