package leaguestanding

import (
	"testing"

	"github.com/riskibarqy/matchstudy/internal/domain/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBlocks() []page.StandingsBlock {
	return []page.StandingsBlock{
		{
			Home:  true,
			Text:  "[IDN D1-3] Persija Jakarta",
			Title: "[IDN D1-3] Persija Jakarta",
			Lines: []page.StandingsLine{
				{Header: "FT"},
				{Cells: []string{"Total", "20", "12", "5", "3", "30", "15", "41"}},
				{Cells: []string{"Home", "10", "8", "1", "1", "18", "6", "25"}},
				{Cells: []string{"Away", "10", "4", "4", "2", "12", "9", "16"}},
				{Header: "HT"},
				{Cells: []string{"Total", "20", "9", "9", "2", "14", "7", "36"}},
			},
		},
		{
			Home:  false,
			Text:  "[IDN D1-7] Persib Bandung",
			Title: "[IDN D1-7] Persib Bandung",
			Lines: []page.StandingsLine{
				{Header: "FT"},
				{Cells: []string{"Total", "20", "8", "6", "6", "25", "22", "30"}},
				{Cells: []string{"Home", "10", "6", "2", "2", "15", "9", "20"}},
				{Cells: []string{"Away", "10", "2", "4", "4", "10", "13", "10"}},
			},
		},
	}
}

func TestExtract_HomeBlock(t *testing.T) {
	t.Parallel()

	got, ok := Extract(sampleBlocks(), "persija")
	require.True(t, ok)
	assert.Equal(t, "3", got.Position)
	assert.Equal(t, VenueHome, got.VenueType)
	require.NotNil(t, got.Total)
	require.NotNil(t, got.Venue)
	assert.Equal(t, "12", got.Total.Won)
	assert.Equal(t, "8", got.Venue.Won)
	assert.Equal(t, "6", got.Venue.GoalsAgainst)
}

func TestExtract_AwayBlockUsesAwayRow(t *testing.T) {
	t.Parallel()

	got, ok := Extract(sampleBlocks(), "Persib Bandung")
	require.True(t, ok)
	assert.Equal(t, "7", got.Position)
	assert.Equal(t, VenueAway, got.VenueType)
	require.NotNil(t, got.Venue)
	assert.Equal(t, "2", got.Venue.Won)
}

func TestExtract_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := Extract(sampleBlocks(), "Arema"); ok {
		t.Fatalf("expected unknown team to be missing")
	}
	if _, ok := Extract(nil, "Persija"); ok {
		t.Fatalf("expected no blocks to be missing")
	}
	if _, ok := Extract([]page.StandingsBlock{{Home: true, Text: "Persija"}}, "Persija"); ok {
		t.Fatalf("expected empty block to be missing")
	}
}

func TestExtractOverUnder(t *testing.T) {
	t.Parallel()

	got, ok := ExtractOverUnder(page.OverUnderBlock{
		Title:  "Over/Under Odds (10 games)",
		Values: []string{"60%", " 10% ", "30%"},
	})
	require.True(t, ok)
	assert.Equal(t, OverUnderSplit{Games: 10, OverPct: 60, PushPct: 10, UnderPct: 30}, got)

	_, ok = ExtractOverUnder(page.OverUnderBlock{Values: []string{"60%", "40%"}})
	assert.False(t, ok)

	_, ok = ExtractOverUnder(page.OverUnderBlock{Values: []string{"x", "1", "2"}})
	assert.False(t, ok)
}
