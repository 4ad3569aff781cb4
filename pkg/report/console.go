package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/will8807/ggg-luck/pkg/luck"
)

// DisplayLuckAnalysis prints a ranked plain-text table of the season
// analysis to the given writer
func DisplayLuckAnalysis(w io.Writer, metrics []*luck.LuckMetrics) {
	if len(metrics) == 0 {
		fmt.Fprintln(w, "No completed weeks available for analysis.")
		return
	}

	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintln(w, "SEASON LUCK ANALYSIS (most unlucky first)")
	fmt.Fprintln(w, strings.Repeat("=", 78))
	fmt.Fprintf(w, "%-4s %-24s %10s %9s %8s %9s %5s\n",
		"Rank", "Team", "Total", "Avg/Wk", "Record", "Deserved", "Diff")
	fmt.Fprintln(w, strings.Repeat("-", 78))

	for i, m := range metrics {
		record := fmt.Sprintf("%d-%d", m.ActualWins, m.ActualLosses)
		deserved := fmt.Sprintf("%d-%d", m.ShouldHaveWins, m.ShouldHaveLosses)
		fmt.Fprintf(w, "%-4d %-24s %10.1f %9.1f %8s %9s %+5d\n",
			i+1, truncate(m.TeamName, 24), m.TotalLuckScore, m.AvgLuckPerWeek,
			record, deserved, m.LuckDifferential)
	}

	fmt.Fprintln(w, strings.Repeat("=", 78))
}

// DisplayTeamTrends prints one team's momentum summary
func DisplayTeamTrends(w io.Writer, t *luck.ScoringTrends) {
	if t == nil {
		fmt.Fprintln(w, "No trend data available.")
		return
	}

	fmt.Fprintf(w, "%s scoring trends\n", t.TeamName)
	fmt.Fprintf(w, "  Average score:    %.2f\n", t.AvgScore)
	fmt.Fprintf(w, "  Std deviation:    %.2f\n", t.ScoreStd)
	fmt.Fprintf(w, "  Trend slope:      %+.2f pts/week\n", t.TrendSlope)
	fmt.Fprintf(w, "  Recent average:   %.2f\n", t.RecentAvg)
	fmt.Fprintf(w, "  Peak week:        %d\n", t.PeakWeek)
	fmt.Fprintf(w, "  Valley week:      %d\n", t.ValleyWeek)
	switch {
	case t.HotStreak > 0:
		fmt.Fprintf(w, "  Streak:           hot, %d weeks above average\n", t.HotStreak)
	case t.ColdStreak > 0:
		fmt.Fprintf(w, "  Streak:           cold, %d weeks at or below average\n", t.ColdStreak)
	}
	fmt.Fprintf(w, "  Volatility index: %.1f%%\n", t.VolatilityIndex)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
