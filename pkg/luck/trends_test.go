package luck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamWeeks(teamID string, scores ...float64) []*WeeklyMatchup {
	var out []*WeeklyMatchup
	for i, s := range scores {
		out = append(out, &WeeklyMatchup{
			Week:      i + 1,
			TeamID:    teamID,
			TeamName:  "Team " + teamID,
			TeamScore: s,
		})
	}
	return out
}

func TestTrendsEmptyInput(t *testing.T) {
	assert.Nil(t, ComputeScoringTrends(nil))
}

func TestTrendsConstantScores(t *testing.T) {
	// A team scoring its average every week has no slope and no volatility
	trends := ComputeScoringTrends(teamWeeks("a", 100, 100, 100, 100))
	require.NotNil(t, trends)

	assert.Equal(t, 100.0, trends.AvgScore)
	assert.Equal(t, 0.0, trends.ScoreStd)
	assert.Equal(t, 0.0, trends.TrendSlope)
	assert.Equal(t, 0.0, trends.VolatilityIndex)
	assert.Equal(t, 100.0, trends.RecentAvg)
}

func TestTrendsSlope(t *testing.T) {
	// Perfectly linear scores give back the exact slope
	trends := ComputeScoringTrends(teamWeeks("a", 100, 110, 120, 130))
	require.NotNil(t, trends)
	assert.InDelta(t, 10.0, trends.TrendSlope, 1e-9)

	// Fewer than two weeks cannot have a slope
	single := ComputeScoringTrends(teamWeeks("a", 100))
	require.NotNil(t, single)
	assert.Equal(t, 0.0, single.TrendSlope)
}

func TestTrendsRecentAverage(t *testing.T) {
	trends := ComputeScoringTrends(teamWeeks("a", 80, 90, 100, 110, 120))
	require.NotNil(t, trends)
	assert.InDelta(t, 110.0, trends.RecentAvg, 1e-9)

	// Shorter than the window falls back to the overall average
	short := ComputeScoringTrends(teamWeeks("a", 80, 120))
	require.NotNil(t, short)
	assert.InDelta(t, short.AvgScore, short.RecentAvg, 1e-9)
}

func TestTrendsPeakAndValleyFirstOccurrence(t *testing.T) {
	trends := ComputeScoringTrends(teamWeeks("a", 90, 130, 80, 130, 80))
	require.NotNil(t, trends)
	assert.Equal(t, 2, trends.PeakWeek)
	assert.Equal(t, 3, trends.ValleyWeek)
}

func TestTrendsHotStreak(t *testing.T) {
	// avg = 100, last three weeks above it
	trends := ComputeScoringTrends(teamWeeks("a", 80, 80, 110, 115, 115))
	require.NotNil(t, trends)
	assert.Equal(t, 3, trends.HotStreak)
	assert.Equal(t, 0, trends.ColdStreak)
}

func TestTrendsColdStreak(t *testing.T) {
	trends := ComputeScoringTrends(teamWeeks("a", 120, 120, 90, 85))
	require.NotNil(t, trends)
	assert.Equal(t, 0, trends.HotStreak)
	assert.Equal(t, 2, trends.ColdStreak)
}

func TestTrendsStreakExclusivity(t *testing.T) {
	cases := [][]float64{
		{100, 100, 100},
		{80, 120},
		{120, 80},
		{50},
		{90, 110, 95, 105, 99},
	}
	for _, scores := range cases {
		trends := ComputeScoringTrends(teamWeeks("a", scores...))
		require.NotNil(t, trends)
		exclusive := (trends.HotStreak > 0) != (trends.ColdStreak > 0)
		assert.True(t, exclusive, "exactly one streak must be non-zero for %v", scores)
	}
}

func TestTrendsVolatility(t *testing.T) {
	trends := ComputeScoringTrends(teamWeeks("a", 90, 110))
	require.NotNil(t, trends)
	// population std of {90,110} is 10, avg 100
	assert.InDelta(t, 10.0, trends.ScoreStd, 1e-9)
	assert.InDelta(t, 10.0, trends.VolatilityIndex, 1e-9)

	zero := ComputeScoringTrends(teamWeeks("a", 0, 0))
	require.NotNil(t, zero)
	assert.Equal(t, 0.0, zero.VolatilityIndex)
}
