package precedent

import (
	"slices"
	"strings"

	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
)

// Side is the venue a team played a match at.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Orientation labels for indirect comparisons.
const (
	OrientationHome = "H"
	OrientationAway = "A"
)

// IndirectMatch is a record between the main team and a shared opponent.
type IndirectMatch struct {
	Record   matchrecord.MatchRecord `json:"record"`
	MainSide string                  `json:"main_side"`
}

// Rival is the opponent read from a flagged history row.
type Rival struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	MatchID string `json:"match_id,omitempty"`
}

// SortByDateDesc returns a copy of records ordered newest first. Records on
// the same date keep their input order.
func SortByDateDesc(records []matchrecord.MatchRecord) []matchrecord.MatchRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b matchrecord.MatchRecord) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// MostRecent returns the newest record.
func MostRecent(records []matchrecord.MatchRecord) (matchrecord.MatchRecord, bool) {
	sorted := SortByDateDesc(records)
	if len(sorted) == 0 {
		return matchrecord.MatchRecord{}, false
	}
	return sorted[0], true
}

// SameVenue returns the newest record played with home at home and away away.
// The reverse fixture never matches.
func SameVenue(records []matchrecord.MatchRecord, home, away string) (matchrecord.MatchRecord, bool) {
	for _, record := range SortByDateDesc(records) {
		if strings.EqualFold(record.HomeTeam, home) && strings.EqualFold(record.AwayTeam, away) {
			return record, true
		}
	}
	return matchrecord.MatchRecord{}, false
}

// LastInLeague returns the newest record where team played on side. An empty
// groupingKey disables the league filter. Team names match by containment,
// since history tables often abbreviate them.
func LastInLeague(records []matchrecord.MatchRecord, team, groupingKey string, side Side) (matchrecord.MatchRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(team))
	if needle == "" {
		return matchrecord.MatchRecord{}, false
	}

	for _, record := range SortByDateDesc(records) {
		if groupingKey != "" && record.GroupingKey != groupingKey {
			continue
		}
		name := record.HomeTeam
		if side == SideAway {
			name = record.AwayTeam
		}
		if strings.Contains(strings.ToLower(name), needle) {
			return record, true
		}
	}
	return matchrecord.MatchRecord{}, false
}

// Indirect returns the newest record between mainTeam and opponent in either
// order. The league filter applies only when both groupingKey and the record
// carry one.
func Indirect(records []matchrecord.MatchRecord, mainTeam, opponent, groupingKey string) (IndirectMatch, bool) {
	if strings.TrimSpace(mainTeam) == "" || strings.TrimSpace(opponent) == "" {
		return IndirectMatch{}, false
	}

	for _, record := range SortByDateDesc(records) {
		if groupingKey != "" && record.GroupingKey != "" && record.GroupingKey != groupingKey {
			continue
		}
		switch {
		case strings.EqualFold(record.HomeTeam, mainTeam) && strings.EqualFold(record.AwayTeam, opponent):
			return IndirectMatch{Record: record, MainSide: OrientationHome}, true
		case strings.EqualFold(record.AwayTeam, mainTeam) && strings.EqualFold(record.HomeTeam, opponent):
			return IndirectMatch{Record: record, MainSide: OrientationAway}, true
		}
	}
	return IndirectMatch{}, false
}

// FlaggedRival reads the opponent from the first flagged row of a team's
// history table, in table order. side is where the team itself played. Once
// groupingKey is given, rows of other competitions and rows without a key
// are skipped.
func FlaggedRival(records []matchrecord.MatchRecord, side Side, groupingKey string) (Rival, bool) {
	for _, record := range InLeague(records, groupingKey) {
		if !record.Flagged {
			continue
		}

		rival := Rival{MatchID: record.ExternalID}
		if side == SideAway {
			rival.ID, rival.Name = record.HomeTeamID, record.HomeTeam
		} else {
			rival.ID, rival.Name = record.AwayTeamID, record.AwayTeam
		}
		if rival.Name == "" {
			continue
		}
		return rival, true
	}
	return Rival{}, false
}

// Crossover returns the newest played record between the two rivals. Rows
// without a score are skipped. Team ids are compared when both rivals carry
// one, names otherwise.
func Crossover(records []matchrecord.MatchRecord, a, b Rival) (matchrecord.MatchRecord, bool) {
	if a.Name == "" || b.Name == "" {
		return matchrecord.MatchRecord{}, false
	}
	byID := a.ID != "" && b.ID != ""

	for _, record := range SortByDateDesc(records) {
		if !record.HasScore() {
			continue
		}
		var homeKey, awayKey, aKey, bKey string
		if byID {
			homeKey, awayKey, aKey, bKey = record.HomeTeamID, record.AwayTeamID, a.ID, b.ID
		} else {
			homeKey, awayKey = strings.ToLower(record.HomeTeam), strings.ToLower(record.AwayTeam)
			aKey, bKey = strings.ToLower(a.Name), strings.ToLower(b.Name)
		}
		if (homeKey == aKey && awayKey == bKey) || (homeKey == bKey && awayKey == aKey) {
			return record, true
		}
	}
	return matchrecord.MatchRecord{}, false
}

// InLeague keeps records of groupingKey. An empty key keeps everything, and
// records without a key are dropped once a key is given.
func InLeague(records []matchrecord.MatchRecord, groupingKey string) []matchrecord.MatchRecord {
	if groupingKey == "" {
		return records
	}
	out := make([]matchrecord.MatchRecord, 0, len(records))
	for _, record := range records {
		if record.GroupingKey == groupingKey {
			out = append(out, record)
		}
	}
	return out
}
