package precedent

import (
	"testing"

	"github.com/riskibarqy/matchstudy/internal/domain/matchrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(home, away, date string) matchrecord.MatchRecord {
	return matchrecord.MatchRecord{
		Date:     matchrecord.ParseDate(date),
		DateText: date,
		HomeTeam: home,
		AwayTeam: away,
		ScoreRaw: "1-0",
	}
}

func TestSameVenue_PicksExactOrderMostRecent(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{
		rec("A", "B", "2024-01-01"),
		rec("B", "A", "2024-02-01"),
		rec("A", "B", "2023-05-01"),
	}

	got, ok := SameVenue(records, "a", "b")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got.DateText)
}

func TestSameVenue_NoMatch(t *testing.T) {
	t.Parallel()

	_, ok := SameVenue([]matchrecord.MatchRecord{rec("B", "A", "2024-02-01")}, "A", "B")
	if ok {
		t.Fatalf("reverse fixture must not match")
	}
}

func TestMostRecent_UnknownDatesNeverWin(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{
		rec("A", "B", "garbage"),
		rec("B", "A", "2020-06-01"),
	}
	got, ok := MostRecent(records)
	require.True(t, ok)
	assert.Equal(t, "2020-06-01", got.DateText)

	_, ok = MostRecent(nil)
	assert.False(t, ok)
}

func TestSortByDateDesc_StableAndCopied(t *testing.T) {
	t.Parallel()

	first := rec("A", "B", "2024-01-01")
	second := rec("C", "D", "2024-01-01")
	older := rec("E", "F", "2022-01-01")
	input := []matchrecord.MatchRecord{older, first, second}

	got := SortByDateDesc(input)
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].HomeTeam)
	assert.Equal(t, "C", got[1].HomeTeam)
	assert.Equal(t, "E", got[2].HomeTeam)
	assert.Equal(t, "E", input[0].HomeTeam)
}

func TestLastInLeague(t *testing.T) {
	t.Parallel()

	league := func(r matchrecord.MatchRecord, key string) matchrecord.MatchRecord {
		r.GroupingKey = key
		return r
	}
	records := []matchrecord.MatchRecord{
		league(rec("Persija Jakarta", "Bali United", "2024-03-01"), "cup"),
		league(rec("Persija Jakarta", "PSM", "2024-02-01"), "273"),
		league(rec("Arema", "Persija Jakarta", "2024-04-01"), "273"),
		league(rec("Persija Jakarta", "Borneo", "2024-01-01"), "273"),
	}

	tests := []struct {
		name     string
		team     string
		key      string
		side     Side
		wantDate string
		wantOK   bool
	}{
		{name: "home in league", team: "persija", key: "273", side: SideHome, wantDate: "2024-02-01", wantOK: true},
		{name: "home any league", team: "Persija", key: "", side: SideHome, wantDate: "2024-03-01", wantOK: true},
		{name: "away in league", team: "Persija Jakarta", key: "273", side: SideAway, wantDate: "2024-04-01", wantOK: true},
		{name: "unknown league", team: "Persija", key: "999", side: SideHome},
		{name: "empty team", team: " ", key: "", side: SideHome},
	}

	for _, tt := range tests {
		got, ok := LastInLeague(records, tt.team, tt.key, tt.side)
		if ok != tt.wantOK {
			t.Fatalf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if ok && got.DateText != tt.wantDate {
			t.Fatalf("%s: date = %s, want %s", tt.name, got.DateText, tt.wantDate)
		}
	}
}

func TestIndirect_ReportsOrientation(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{
		rec("C", "A", "2024-05-01"),
		rec("A", "C", "2023-05-01"),
		rec("A", "D", "2024-06-01"),
	}

	got, ok := Indirect(records, "A", "c", "")
	require.True(t, ok)
	assert.Equal(t, OrientationAway, got.MainSide)
	assert.Equal(t, "2024-05-01", got.Record.DateText)

	records[0].GroupingKey = "cup"
	records[1].GroupingKey = "273"
	got, ok = Indirect(records, "A", "C", "273")
	require.True(t, ok)
	assert.Equal(t, OrientationHome, got.MainSide)

	_, ok = Indirect(records, "A", "Z", "")
	assert.False(t, ok)
}

func TestFlaggedRivalAndCrossover(t *testing.T) {
	t.Parallel()

	homeHistory := []matchrecord.MatchRecord{
		{HomeTeam: "A", AwayTeam: "X", HomeTeamID: "1", AwayTeamID: "10"},
		{HomeTeam: "A", AwayTeam: "R1", HomeTeamID: "1", AwayTeamID: "11", Flagged: true, ExternalID: "555"},
	}
	awayHistory := []matchrecord.MatchRecord{
		{HomeTeam: "R2", AwayTeam: "B", HomeTeamID: "22", AwayTeamID: "2", Flagged: true},
		{Date: matchrecord.Date{Year: 2023, Month: 1, Day: 1}, HomeTeam: "R2 FC", AwayTeam: "R1 United", HomeTeamID: "22", AwayTeamID: "11", ScoreRaw: "0-2"},
		{Date: matchrecord.Date{Year: 2022, Month: 1, Day: 1}, HomeTeam: "R1", AwayTeam: "R2", HomeTeamID: "11", AwayTeamID: "22"},
	}

	rivalA, ok := FlaggedRival(homeHistory, SideHome, "")
	require.True(t, ok)
	assert.Equal(t, Rival{ID: "11", Name: "R1", MatchID: "555"}, rivalA)

	rivalB, ok := FlaggedRival(awayHistory, SideAway, "")
	require.True(t, ok)
	assert.Equal(t, "22", rivalB.ID)

	got, ok := Crossover(awayHistory, rivalA, rivalB)
	require.True(t, ok)
	assert.Equal(t, "0-2", got.ScoreRaw)

	_, ok = FlaggedRival(homeHistory[:1], SideHome, "")
	assert.False(t, ok)
}

func TestFlaggedRival_RestrictsToLeague(t *testing.T) {
	t.Parallel()

	history := []matchrecord.MatchRecord{
		{HomeTeam: "A", AwayTeam: "Cup Rival", AwayTeamID: "900", GroupingKey: "cup", Flagged: true},
		{HomeTeam: "A", AwayTeam: "Friendly Rival", AwayTeamID: "901", Flagged: true},
		{HomeTeam: "A", AwayTeam: "League Rival", AwayTeamID: "1500", GroupingKey: "273", Flagged: true},
	}

	got, ok := FlaggedRival(history, SideHome, "273")
	require.True(t, ok)
	assert.Equal(t, Rival{ID: "1500", Name: "League Rival"}, got)

	got, ok = FlaggedRival(history, SideHome, "")
	require.True(t, ok)
	assert.Equal(t, "900", got.ID)

	_, ok = FlaggedRival(history[:2], SideHome, "273")
	assert.False(t, ok)
}

func TestCrossover_SkipsUnplayedMeetings(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{
		{Date: matchrecord.Date{Year: 2024, Month: 5, Day: 1}, HomeTeam: "R1", AwayTeam: "R2", HomeTeamID: "11", AwayTeamID: "22", ScoreRaw: "?-?"},
		{Date: matchrecord.Date{Year: 2023, Month: 8, Day: 1}, HomeTeam: "R2", AwayTeam: "R1", HomeTeamID: "22", AwayTeamID: "11", ScoreRaw: "2-1"},
	}

	got, ok := Crossover(records, Rival{ID: "11", Name: "R1"}, Rival{ID: "22", Name: "R2"})
	require.True(t, ok)
	assert.Equal(t, "2-1", got.ScoreRaw)

	_, ok = Crossover(records[:1], Rival{ID: "11", Name: "R1"}, Rival{ID: "22", Name: "R2"})
	assert.False(t, ok)
}

func TestCrossover_FallsBackToNames(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{rec("r2", "R1", "2024-01-01")}
	got, ok := Crossover(records, Rival{Name: "R1"}, Rival{Name: "R2", ID: "22"})
	require.True(t, ok)
	assert.Equal(t, "r2", got.HomeTeam)
}

func TestInLeague(t *testing.T) {
	t.Parallel()

	records := []matchrecord.MatchRecord{
		{HomeTeam: "A", GroupingKey: "273"},
		{HomeTeam: "B"},
		{HomeTeam: "C", GroupingKey: "cup"},
	}
	assert.Len(t, InLeague(records, ""), 3)

	got := InLeague(records, "273")
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].HomeTeam)
}
