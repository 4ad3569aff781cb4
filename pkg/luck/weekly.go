package luck

// ComputeWeeklyLuck computes a luck score for every team in a single week.
// The caller must pass exactly one week's worth of matchup records; the
// result is keyed by team id. Pure function, no side effects.
//
// Luck is the sum of two signed components: how the actual outcome compared
// with the win expectation implied by the team's score rank across the whole
// field, and an adjustment for how strong the actual opponent was. Beating a
// top scorer earns more than beating the week's doormat.
func ComputeWeeklyLuck(weekMatchups []*WeeklyMatchup) map[string]float64 {
	scores := make(map[string]float64)
	if len(weekMatchups) == 0 {
		return scores
	}

	n := len(weekMatchups)

	for _, m := range weekMatchups {
		expectedWinPct := expectedWinPctForScore(m.TeamScore, m.TeamID, weekMatchups, n)
		opponentPercentile := fieldPercentile(m.OpponentScore, weekMatchups, n)

		actualResult := 0.0
		if m.Won {
			actualResult = 1.0
		}

		baseLuck := (actualResult - expectedWinPct) * Config.BaseLuckScale
		opponentStrengthFactor := (opponentPercentile - Config.NeutralProbability) * Config.OpponentStrengthScale

		scores[m.TeamID] = baseLuck - opponentStrengthFactor
	}

	return scores
}

// expectedWinPctForScore returns the fraction of the other teams in the week
// whose score the given score strictly beats. A team never compares to
// itself. Falls back to the neutral probability when there are no other
// teams to compare against.
func expectedWinPctForScore(score float64, teamID string, weekMatchups []*WeeklyMatchup, n int) float64 {
	if n-1 == 0 {
		return Config.NeutralProbability
	}

	teamsWouldBeat := 0
	for _, other := range weekMatchups {
		if other.TeamID == teamID {
			continue
		}
		if other.TeamScore < score {
			teamsWouldBeat++
		}
	}

	return float64(teamsWouldBeat) / float64(n-1)
}

// fieldPercentile returns the fraction of the field scoring strictly less
// than the given score, over n-1 comparisons. Used to rank the opponent's
// score among the week's teams. Neutral fallback for a degenerate
// single-team week, matching expectedWinPctForScore.
func fieldPercentile(score float64, weekMatchups []*WeeklyMatchup, n int) float64 {
	if n-1 == 0 {
		return Config.NeutralProbability
	}

	below := 0
	for _, other := range weekMatchups {
		if other.TeamScore < score {
			below++
		}
	}

	return float64(below) / float64(n-1)
}
