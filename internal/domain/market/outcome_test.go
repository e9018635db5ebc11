package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHandicap(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	tests := []struct {
		name        string
		score       string
		line        float64
		favorite    string
		recordHome  string
		recordAway  string
		currentHome string
		want        Coverage
		wantCovered *bool
	}{
		{name: "favourite clears line", score: "2-0", line: 1, favorite: "Home", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: Covered, wantCovered: &yes},
		{name: "margin equals line", score: "1-0", line: 1, favorite: "Home", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoveragePush},
		{name: "level line draw", score: "1-1", line: 0, recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoveragePush},
		{name: "level line home win same orientation", score: "2-1", line: 0, recordHome: "Home", recordAway: "Away", currentHome: "home", want: Covered, wantCovered: &yes},
		{name: "level line home win reversed orientation", score: "2-1", line: 0, recordHome: "Away", recordAway: "Home", currentHome: "Home", want: NotCovered, wantCovered: &no},
		{name: "level line away win reversed orientation", score: "0-3", line: 0, recordHome: "Away", recordAway: "Home", currentHome: "Home", want: Covered, wantCovered: &yes},
		{name: "away favourite falls short", score: "1-1", line: -0.5, favorite: "Away", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: NotCovered, wantCovered: &no},
		{name: "quarter line noise is tolerated", score: "1-0", line: 1.0000001, favorite: "home", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoveragePush},
		{name: "favourite on away side of record", score: "0-3", line: 2.5, favorite: "Home", recordHome: "Away", recordAway: "Home", currentHome: "Home", want: Covered, wantCovered: &yes},
		{name: "unknown favourite", score: "2-0", line: 1, favorite: "Other", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoverageIndeterminate},
		{name: "unknown score", score: "?-?", line: 1, favorite: "Home", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoverageIndeterminate},
		{name: "negative goals rejected", score: "-1-2", line: 1, favorite: "Home", recordHome: "Home", recordAway: "Away", currentHome: "Home", want: CoverageIndeterminate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyHandicap(tt.score, tt.line, tt.favorite, tt.recordHome, tt.recordAway, tt.currentHome)
			assert.Equal(t, tt.want, got.Outcome)
			assert.Equal(t, tt.wantCovered, got.Covered)
		})
	}
}

func TestClassifyGoalLine(t *testing.T) {
	t.Parallel()

	under := ClassifyGoalLine("2-1", 3.5)
	require.Equal(t, Under, under.Outcome)
	require.NotNil(t, under.Over)
	assert.False(t, *under.Over)

	lowUnder := ClassifyGoalLine("1-0", 2.5)
	assert.Equal(t, Under, lowUnder.Outcome)

	over := ClassifyGoalLine("2-2", 2.5)
	require.Equal(t, Over, over.Outcome)
	require.NotNil(t, over.Over)
	assert.True(t, *over.Over)

	push := ClassifyGoalLine("1-1", 2)
	assert.Equal(t, GoalPush, push.Outcome)
	assert.Nil(t, push.Over)

	bad := ClassifyGoalLine("abandoned", 2.5)
	assert.Equal(t, GoalIndeterminate, bad.Outcome)
	assert.Nil(t, bad.Over)
}

func TestCompareFavoritism(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		historic float64
		current  float64
		favorite string
		want     Shift
	}{
		{name: "same favourite stronger", historic: 0.5, current: 1, favorite: "Home", want: MoreFavored},
		{name: "same favourite weaker", historic: 1, current: 0.25, favorite: "home", want: LessFavored},
		{name: "same favourite same line", historic: -0.75, current: -0.75, favorite: "Away", want: SameMagnitude},
		{name: "favourite flipped", historic: -0.5, current: 0.5, favorite: "Home", want: FavoriteFlipped},
		{name: "favourite created", historic: 0, current: 0.5, favorite: "Home", want: FavoriteCreated},
		{name: "favourite removed", historic: 0.5, current: 0, favorite: "", want: FavoriteRemoved},
		{name: "both level", historic: 0, current: 0, favorite: "", want: SameMagnitude},
	}

	for _, tt := range tests {
		got := CompareFavoritism(tt.historic, tt.current, "Home", "Away", tt.favorite)
		if got != tt.want {
			t.Fatalf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestFavoriteFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Home", FavoriteFor(0.25, "Home", "Away"))
	assert.Equal(t, "Away", FavoriteFor(-1, "Home", "Away"))
	assert.Equal(t, "", FavoriteFor(0, "Home", "Away"))
}
