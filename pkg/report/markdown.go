package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
)

// GenerateMarkdownReport renders the full season luck report: rankings
// table, per-team extreme weeks, optional weekly breakdowns, and a
// methodology section explaining how the numbers are computed.
func GenerateMarkdownReport(metrics []*luck.LuckMetrics, breakdowns []*luck.WeekBreakdown, leagueName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s Luck Report\n\n", leagueName))
	sb.WriteString(fmt.Sprintf("Generated %s\n\n", time.Now().Format("2006-01-02")))

	if len(metrics) == 0 {
		sb.WriteString("No completed weeks available for analysis.\n")
		return sb.String()
	}

	sb.WriteString("## Luck Rankings\n\n")
	sb.WriteString("Sorted most unlucky first. Negative totals mean outcomes fell short of what score rank deserved.\n\n")
	sb.WriteString("| Rank | Team | Total Luck | Avg/Week | Record | Deserved | Diff |\n")
	sb.WriteString("|------|------|-----------:|---------:|--------|----------|-----:|\n")

	for i, m := range metrics {
		diff := fmt.Sprintf("%+d", m.LuckDifferential)
		sb.WriteString(fmt.Sprintf("| %d | %s | %.1f | %.1f | %d-%d | %d-%d | %s |\n",
			i+1, m.TeamName, m.TotalLuckScore, m.AvgLuckPerWeek,
			m.ActualWins, m.ActualLosses,
			m.ShouldHaveWins, m.ShouldHaveLosses, diff))
	}
	sb.WriteString("\n")

	sb.WriteString("## Extreme Weeks\n\n")
	for _, m := range metrics {
		sb.WriteString(fmt.Sprintf("### %s\n\n", m.TeamName))
		if m.LuckiestWeek != nil {
			sb.WriteString(fmt.Sprintf("- Luckiest: %s\n", m.LuckiestWeek.Summary()))
		}
		if m.UnluckiestWeek != nil {
			sb.WriteString(fmt.Sprintf("- Unluckiest: %s\n", m.UnluckiestWeek.Summary()))
		}
		if m.Trends != nil {
			sb.WriteString(trendLine(m.Trends))
		}
		sb.WriteString("\n")
	}

	if len(breakdowns) > 0 {
		sb.WriteString("## Week by Week\n\n")
		for _, bd := range breakdowns {
			sb.WriteString(fmt.Sprintf("### Week %d\n\n", bd.Week))
			if bd.Luckiest != nil {
				sb.WriteString(fmt.Sprintf("- Luckiest: **%s** (%.1f): %s\n",
					bd.Luckiest.TeamName, bd.Luckiest.LuckScore, bd.Luckiest.Matchup.Summary()))
			}
			if bd.Unluckiest != nil {
				sb.WriteString(fmt.Sprintf("- Unluckiest: **%s** (%.1f): %s\n",
					bd.Unluckiest.TeamName, bd.Unluckiest.LuckScore, bd.Unluckiest.Matchup.Summary()))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(methodologySection())

	return sb.String()
}

// trendLine formats a one-line momentum summary for a team
func trendLine(t *luck.ScoringTrends) string {
	var form string
	switch {
	case t.HotStreak > 0:
		form = fmt.Sprintf("hot streak of %d weeks", t.HotStreak)
	case t.ColdStreak > 0:
		form = fmt.Sprintf("cold streak of %d weeks", t.ColdStreak)
	default:
		form = "no current streak"
	}
	return fmt.Sprintf("- Trends: avg %.1f, slope %+.2f pts/week, volatility %.1f%%, %s\n",
		t.AvgScore, t.TrendSlope, t.VolatilityIndex, form)
}

func methodologySection() string {
	return `## Methodology

Each week, every team's score is ranked against all other teams in the
league. The fraction of the field a team would have beaten is its expected
win percentage for that week. Luck is the gap between the actual outcome
(win = 1, loss = 0) and that expectation, scaled to roughly -100..100, then
adjusted for opponent strength: beating a team that out-scored most of the
league counts for more than beating the week's lowest scorer.

Deserved records sum each team's weekly win probabilities (its score ranked
against the rest of that week's field) across the season, rounded to the
nearest whole win. The luck differential is actual wins minus deserved wins.
`
}

// WriteMarkdownReport renders the report and writes it under the configured
// report directory, returning the file path
func WriteMarkdownReport(metrics []*luck.LuckMetrics, breakdowns []*luck.WeekBreakdown, leagueName string) (string, error) {
	content := GenerateMarkdownReport(metrics, breakdowns, leagueName)

	outDir := luck.Config.ReportOutputPath
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(outDir, fmt.Sprintf("luck_report_%s.md", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("Markdown report written", path)
	return path, nil
}
