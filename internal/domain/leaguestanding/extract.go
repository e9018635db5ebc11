package leaguestanding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/page"
)

const (
	VenueHome = "home"
	VenueAway = "away"
)

var (
	positionPattern = regexp.MustCompile(`\[.*?-(\d+)\]`)
	gamesPattern    = regexp.MustCompile(`\((\d+)\s*games\)`)
)

// Extract finds team's standings block and reads its full-time section. The
// home block is searched before the away block.
func Extract(blocks []page.StandingsBlock, team string) (Standing, bool) {
	needle := strings.ToLower(strings.TrimSpace(team))
	if needle == "" {
		return Standing{}, false
	}

	block, found := findBlock(blocks, needle)
	if !found {
		return Standing{}, false
	}

	standing := Standing{Team: team, VenueType: VenueAway}
	venueRow := "Away"
	if block.Home {
		standing.VenueType = VenueHome
		venueRow = "Home"
	}
	if m := positionPattern.FindStringSubmatch(block.Title); m != nil {
		standing.Position = m[1]
	}

	fullTime := false
	for _, line := range block.Lines {
		if line.Header != "" {
			switch {
			case strings.Contains(line.Header, "FT"):
				fullTime = true
			case strings.Contains(line.Header, "HT"):
				fullTime = false
			}
			continue
		}
		if !fullTime || len(line.Cells) < 7 {
			continue
		}

		record := &Record{
			Played:       line.Cells[1],
			Won:          line.Cells[2],
			Draw:         line.Cells[3],
			Lost:         line.Cells[4],
			GoalsFor:     line.Cells[5],
			GoalsAgainst: line.Cells[6],
		}
		switch strings.TrimSpace(line.Cells[0]) {
		case "Total":
			standing.Total = record
		case venueRow:
			standing.Venue = record
		}
	}

	if standing.Total == nil && standing.Venue == nil && standing.Position == "" {
		return Standing{}, false
	}
	return standing, true
}

func findBlock(blocks []page.StandingsBlock, needle string) (page.StandingsBlock, bool) {
	for _, home := range []bool{true, false} {
		for _, block := range blocks {
			if block.Home != home {
				continue
			}
			if strings.Contains(strings.ToLower(block.Text), needle) {
				return block, true
			}
		}
	}
	return page.StandingsBlock{}, false
}

// ExtractOverUnder reads the games count and the over, push and under
// percentages of an over/under summary.
func ExtractOverUnder(block page.OverUnderBlock) (OverUnderSplit, bool) {
	if len(block.Values) != 3 {
		return OverUnderSplit{}, false
	}

	var pct [3]float64
	for i, raw := range block.Values {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%")), 64)
		if err != nil {
			return OverUnderSplit{}, false
		}
		pct[i] = v
	}

	split := OverUnderSplit{OverPct: pct[0], PushPct: pct[1], UnderPct: pct[2]}
	if m := gamesPattern.FindStringSubmatch(block.Title); m != nil {
		split.Games, _ = strconv.Atoi(m[1])
	}
	return split, true
}
