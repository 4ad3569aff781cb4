package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/will8807/ggg-luck/pkg/luck"
)

func sampleMetrics() []*luck.LuckMetrics {
	week2 := &luck.WeeklyMatchup{
		Week: 2, TeamName: "Bravo", TeamScore: 142.5,
		OpponentName: "Alpha", OpponentScore: 150.0, Won: false,
	}
	week5 := &luck.WeeklyMatchup{
		Week: 5, TeamName: "Bravo", TeamScore: 98.0,
		OpponentName: "Delta", OpponentScore: 95.0, Won: true,
	}
	return []*luck.LuckMetrics{
		{
			TeamID: "2", TeamName: "Bravo",
			TotalLuckScore: -120.4, AvgLuckPerWeek: -24.1,
			WeeksPlayed: 5, ActualWins: 2, ActualLosses: 3,
			ShouldHaveWins: 4, ShouldHaveLosses: 1, LuckDifferential: -2,
			LuckiestWeek: week5, UnluckiestWeek: week2,
			Trends: &luck.ScoringTrends{
				TeamID: "2", TeamName: "Bravo",
				WeeklyScores: []float64{142.5, 130, 125, 110, 98},
				AvgScore:     121.1, TrendSlope: -11.05,
				VolatilityIndex: 12.8, ColdStreak: 4,
			},
		},
		{
			TeamID: "1", TeamName: "Alpha",
			TotalLuckScore: 88.2, AvgLuckPerWeek: 17.6,
			WeeksPlayed: 5, ActualWins: 4, ActualLosses: 1,
			ShouldHaveWins: 3, ShouldHaveLosses: 2, LuckDifferential: 1,
			LuckiestWeek: week5, UnluckiestWeek: week2,
			Trends: &luck.ScoringTrends{
				TeamID: "1", TeamName: "Alpha",
				WeeklyScores: []float64{110, 112, 118, 125, 131},
				AvgScore:     119.2, TrendSlope: 5.4,
				VolatilityIndex: 6.7, HotStreak: 3,
			},
		},
	}
}

func TestGenerateMarkdownReportRankings(t *testing.T) {
	md := GenerateMarkdownReport(sampleMetrics(), nil, "Test League")

	assert.Contains(t, md, "# Test League Luck Report")
	assert.Contains(t, md, "## Luck Rankings")
	assert.Contains(t, md, "| Rank | Team | Total Luck | Avg/Week | Record | Deserved | Diff |")

	// Order follows the input slice: most unlucky first
	assert.Contains(t, md, "| 1 | Bravo | -120.4 | -24.1 | 2-3 | 4-1 | -2 |")
	assert.Contains(t, md, "| 2 | Alpha | 88.2 | 17.6 | 4-1 | 3-2 | +1 |")
}

func TestGenerateMarkdownReportExtremeWeeks(t *testing.T) {
	md := GenerateMarkdownReport(sampleMetrics(), nil, "Test League")

	assert.Contains(t, md, "## Extreme Weeks")
	assert.Contains(t, md, "### Bravo")
	assert.Contains(t, md, "Week 2: Bravo (142.50) lost to Alpha (150.00)")
	assert.Contains(t, md, "cold streak of 4 weeks")
	assert.Contains(t, md, "hot streak of 3 weeks")
	assert.Contains(t, md, "## Methodology")
}

func TestGenerateMarkdownReportWeekByWeek(t *testing.T) {
	breakdowns := []*luck.WeekBreakdown{
		{
			Week: 2,
			Luckiest: &luck.MatchupHighlight{
				TeamName:  "Alpha",
				LuckScore: 61.2,
				Matchup: &luck.WeeklyMatchup{
					Week: 2, TeamName: "Alpha", TeamScore: 150.0,
					OpponentName: "Bravo", OpponentScore: 142.5, Won: true,
				},
			},
			Unluckiest: &luck.MatchupHighlight{
				TeamName:  "Bravo",
				LuckScore: -61.2,
				Matchup: &luck.WeeklyMatchup{
					Week: 2, TeamName: "Bravo", TeamScore: 142.5,
					OpponentName: "Alpha", OpponentScore: 150.0, Won: false,
				},
			},
			LuckScores: map[string]float64{"1": 61.2, "2": -61.2},
		},
	}

	md := GenerateMarkdownReport(sampleMetrics(), breakdowns, "Test League")

	assert.Contains(t, md, "## Week by Week")
	assert.Contains(t, md, "### Week 2")
	assert.Contains(t, md, "- Luckiest: **Alpha** (61.2): Week 2: Alpha (150.00) beat Bravo (142.50)")
	assert.Contains(t, md, "- Unluckiest: **Bravo** (-61.2): Week 2: Bravo (142.50) lost to Alpha (150.00)")
}

func TestGenerateMarkdownReportEmpty(t *testing.T) {
	md := GenerateMarkdownReport(nil, nil, "Test League")
	assert.Contains(t, md, "No completed weeks available")
	assert.NotContains(t, md, "## Luck Rankings")
}

func TestWriteMarkdownReport(t *testing.T) {
	original := luck.Config.ReportOutputPath
	luck.Config.ReportOutputPath = t.TempDir()
	defer func() { luck.Config.ReportOutputPath = original }()

	path, err := WriteMarkdownReport(sampleMetrics(), nil, "Test League")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "luck_report_"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Test League Luck Report")
}
