package luck

import (
	"sort"

	"github.com/will8807/ggg-luck/internal/logger"
)

// WeekDataSource supplies one week's worth of paired matchup records.
// An in-progress or future week must yield an empty slice or an error,
// never partial data.
type WeekDataSource interface {
	FetchWeekMatchups(leagueKey string, week int) ([]*WeeklyMatchup, error)
}

// teamWeek is one entry in a team's immutable per-week luck history
type teamWeek struct {
	week    int
	luck    float64
	matchup *WeeklyMatchup
}

// AnalyzeSeasonLuck runs the full season analysis: it scans for completed
// weeks, scores each with the weekly engine, and rolls the results up into
// one LuckMetrics per team, sorted most unlucky first.
//
// Fetch failures never propagate. A failure during the completion scan ends
// the scan at that week; a failure when re-fetching an already confirmed
// week is logged and that week is omitted from the aggregation.
func AnalyzeSeasonLuck(ds WeekDataSource, leagueKey string, maxWeek int) []*LuckMetrics {
	completed := CompletedWeeks(ds, leagueKey, maxWeek)
	if len(completed) == 0 {
		logger.Info("No completed weeks found for league", leagueKey)
		return []*LuckMetrics{}
	}

	weeks := fetchCompletedWeeks(ds, leagueKey, completed)

	// Single pass over completed weeks building an immutable per-team
	// history. All aggregates below are reductions over these lists.
	histories := make(map[string][]teamWeek)
	names := make(map[string]string)

	for _, week := range completed {
		weekMatchups, ok := weeks[week]
		if !ok {
			continue
		}
		weekLuck := ComputeWeeklyLuck(weekMatchups)
		for _, m := range weekMatchups {
			histories[m.TeamID] = append(histories[m.TeamID], teamWeek{
				week:    m.Week,
				luck:    weekLuck[m.TeamID],
				matchup: m,
			})
			names[m.TeamID] = m.TeamName
		}
	}

	var results []*LuckMetrics
	for teamID, history := range histories {
		results = append(results, rollupTeam(teamID, names[teamID], history, weeks))
	}

	// Most unlucky first, team id as a deterministic tie break
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].TotalLuckScore != results[j].TotalLuckScore {
			return results[i].TotalLuckScore < results[j].TotalLuckScore
		}
		return results[i].TeamID < results[j].TeamID
	})

	return results
}

// CompletedWeeks scans weeks 1..maxWeek in order and returns the contiguous
// prefix of completed weeks. The scan stops at the first week that is
// unavailable or empty; it never skips ahead past a gap.
func CompletedWeeks(ds WeekDataSource, leagueKey string, maxWeek int) []int {
	var completed []int
	for week := 1; week <= maxWeek; week++ {
		matchups, err := ds.FetchWeekMatchups(leagueKey, week)
		if err != nil {
			logger.Debug("Week not available, stopping scan", week, err)
			break
		}
		if len(matchups) == 0 {
			logger.Debug("Week incomplete, stopping scan", week)
			break
		}
		completed = append(completed, week)
	}
	return completed
}

// fetchCompletedWeeks re-fetches each confirmed week into a week-keyed map.
// A failure at this stage drops the week from the analysis rather than
// failing the run.
func fetchCompletedWeeks(ds WeekDataSource, leagueKey string, completed []int) map[int][]*WeeklyMatchup {
	weeks := make(map[int][]*WeeklyMatchup)
	for _, week := range completed {
		matchups, err := ds.FetchWeekMatchups(leagueKey, week)
		if err != nil || len(matchups) == 0 {
			logger.Warn("Confirmed week failed to fetch, omitting from aggregation", week, err)
			continue
		}
		weeks[week] = matchups
	}
	return weeks
}

// rollupTeam reduces one team's per-week history into its season metrics
func rollupTeam(teamID, teamName string, history []teamWeek, weeks map[int][]*WeeklyMatchup) *LuckMetrics {
	total := 0.0
	actualWins := 0
	luckiestIdx := 0
	unluckiestIdx := 0

	for i, tw := range history {
		total += tw.luck
		if tw.matchup.Won {
			actualWins++
		}
		// First occurrence wins on ties
		if tw.luck > history[luckiestIdx].luck {
			luckiestIdx = i
		}
		if tw.luck < history[unluckiestIdx].luck {
			unluckiestIdx = i
		}
	}

	weeksPlayed := len(history)
	shouldHaveWins := ExpectedWins(teamID, weeks)

	teamMatchups := make([]*WeeklyMatchup, 0, weeksPlayed)
	for _, tw := range history {
		teamMatchups = append(teamMatchups, tw.matchup)
	}
	sort.SliceStable(teamMatchups, func(i, j int) bool {
		return teamMatchups[i].Week < teamMatchups[j].Week
	})

	return &LuckMetrics{
		TeamID:           teamID,
		TeamName:         teamName,
		TotalLuckScore:   total,
		AvgLuckPerWeek:   total / float64(weeksPlayed),
		LuckiestWeek:     history[luckiestIdx].matchup,
		UnluckiestWeek:   history[unluckiestIdx].matchup,
		WeeksPlayed:      weeksPlayed,
		ActualWins:       actualWins,
		ActualLosses:     weeksPlayed - actualWins,
		ShouldHaveWins:   shouldHaveWins,
		ShouldHaveLosses: weeksPlayed - shouldHaveWins,
		LuckDifferential: actualWins - shouldHaveWins,
		Trends:           ComputeScoringTrends(teamMatchups),
	}
}

// WeeklyBreakdowns returns the luckiest and unluckiest matchup of every
// completed week, plus the raw luck-score map, for detailed reporting
func WeeklyBreakdowns(ds WeekDataSource, leagueKey string, maxWeek int) []*WeekBreakdown {
	completed := CompletedWeeks(ds, leagueKey, maxWeek)
	weeks := fetchCompletedWeeks(ds, leagueKey, completed)

	var breakdowns []*WeekBreakdown
	for _, week := range completed {
		weekMatchups, ok := weeks[week]
		if !ok {
			continue
		}
		weekLuck := ComputeWeeklyLuck(weekMatchups)

		bd := &WeekBreakdown{Week: week, LuckScores: weekLuck}
		for _, m := range weekMatchups {
			score := weekLuck[m.TeamID]
			if bd.Luckiest == nil || score > bd.Luckiest.LuckScore {
				bd.Luckiest = &MatchupHighlight{TeamName: m.TeamName, Matchup: m, LuckScore: score}
			}
			if bd.Unluckiest == nil || score < bd.Unluckiest.LuckScore {
				bd.Unluckiest = &MatchupHighlight{TeamName: m.TeamName, Matchup: m, LuckScore: score}
			}
		}
		breakdowns = append(breakdowns, bd)
	}

	return breakdowns
}
