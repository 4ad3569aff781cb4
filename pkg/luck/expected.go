package luck

import "math"

// The expected-record computation is deliberately separate from the weekly
// engine's win expectation. It builds a per-week opponent pool that omits
// the team's own score outright, rather than ranking against the whole
// field with an n-1 denominator. The two formulas give the same ratios but
// are specified independently, so they stay as two named functions.

// weekWinProbability returns the probability that the given score would have
// won against a uniformly random opponent drawn from the rest of the week's
// field. The pool excludes the team's own entry entirely.
func weekWinProbability(score float64, teamID string, weekMatchups []*WeeklyMatchup) float64 {
	var pool []float64
	for _, m := range weekMatchups {
		if m.TeamID == teamID {
			continue
		}
		pool = append(pool, m.TeamScore)
	}

	if len(pool) == 0 {
		return Config.NeutralProbability
	}

	beaten := 0
	for _, s := range pool {
		if s < score {
			beaten++
		}
	}

	return float64(beaten) / float64(len(pool))
}

// ExpectedWins sums a team's weekly win probabilities across the season and
// rounds to the nearest whole number of wins. Half values round away from
// zero (2.5 -> 3), which is math.Round's convention.
func ExpectedWins(teamID string, weeks map[int][]*WeeklyMatchup) int {
	total := 0.0
	for _, weekMatchups := range weeks {
		for _, m := range weekMatchups {
			if m.TeamID != teamID {
				continue
			}
			total += weekWinProbability(m.TeamScore, teamID, weekMatchups)
			break
		}
	}
	return int(math.Round(total))
}
