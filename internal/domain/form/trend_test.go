package form

import (
	"testing"

	"github.com/riskibarqy/matchstudy/internal/domain/precedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMovement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		delta float64
		want  Movement
	}{
		{delta: 0, want: Unchanged},
		{delta: 0.1, want: Unchanged},
		{delta: 0.25, want: RoseSlightly},
		{delta: 0.5, want: RoseSharply},
		{delta: 1.25, want: RoseSharply},
		{delta: -0.25, want: FellSlightly},
		{delta: -0.75, want: FellSharply},
	}

	for _, tt := range tests {
		if got := ClassifyMovement(tt.delta, DefaultThresholds()); got != tt.want {
			t.Fatalf("delta %.2f: got %s, want %s", tt.delta, got, tt.want)
		}
	}
}

func TestClassifyMovement_CustomThresholds(t *testing.T) {
	t.Parallel()

	wide := Thresholds{Slight: 0.5, Sharp: 1}
	assert.Equal(t, Unchanged, ClassifyMovement(0.25, wide))
	assert.Equal(t, RoseSlightly, ClassifyMovement(0.75, wide))
	assert.Equal(t, FellSharply, ClassifyMovement(-1, wide))
}

func TestThresholdsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultThresholds().Validate())
	assert.Error(t, Thresholds{Slight: 0, Sharp: 0.5}.Validate())
	assert.Error(t, Thresholds{Slight: 0.5, Sharp: 0.25}.Validate())
}

func TestLineTrend(t *testing.T) {
	t.Parallel()

	// Alpha gave half a goal at home last time and now gives a goal and a quarter.
	latest := match("2024-04-01", "Alpha", "Beta", "1-0", "0.5")
	got, ok := LineTrend("Alpha", latest, 1.25, precedent.SideHome, DefaultThresholds())
	require.True(t, ok)
	assert.Equal(t, RoseSharply, got.Movement)
	assert.InDelta(t, 0.75, got.Delta, 1e-9)
	assert.Equal(t, "0.5", got.HistoricLine)
	assert.Equal(t, "1.25", got.CurrentLine)

	// Beta received a quarter away last time and now receives half a goal away.
	latest = match("2024-04-01", "Gamma", "Beta", "1-0", "0.25")
	got, ok = LineTrend("Beta", latest, 0.5, precedent.SideAway, DefaultThresholds())
	require.True(t, ok)
	assert.Equal(t, FellSlightly, got.Movement)
	assert.Equal(t, "-0.25", got.HistoricLine)
	assert.Equal(t, "-0.5", got.CurrentLine)
}

func TestLineTrend_Unavailable(t *testing.T) {
	t.Parallel()

	_, ok := LineTrend("Alpha", match("2024-04-01", "Alpha", "Beta", "1-0", "-"), 1, precedent.SideHome, DefaultThresholds())
	assert.False(t, ok)

	_, ok = LineTrend("Zeta", match("2024-04-01", "Alpha", "Beta", "1-0", "1"), 1, precedent.SideHome, DefaultThresholds())
	assert.False(t, ok)
}

func TestLineTrend_OpponentNameExtendsTeamName(t *testing.T) {
	t.Parallel()

	latest := match("2024-04-01", "Persib Bandung B", "Persib Bandung", "0-2", "-0.5")
	got, ok := LineTrend("Persib Bandung", latest, -0.5, precedent.SideAway, DefaultThresholds())
	require.True(t, ok)
	assert.Equal(t, "0.5", got.HistoricLine)
	assert.Equal(t, "0.5", got.CurrentLine)
	assert.InDelta(t, 0, got.Delta, 1e-9)
}
