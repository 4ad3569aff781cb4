package luck

import "math"

// ComputeScoringTrends derives momentum and consistency statistics from one
// team's matchups, ordered by week. Returns nil for an empty input.
func ComputeScoringTrends(teamMatchups []*WeeklyMatchup) *ScoringTrends {
	if len(teamMatchups) == 0 {
		return nil
	}

	scores := make([]float64, len(teamMatchups))
	for i, m := range teamMatchups {
		scores[i] = m.TeamScore
	}

	avg := mean(scores)
	std := populationStdDev(scores, avg)

	peakWeek := teamMatchups[0].Week
	valleyWeek := teamMatchups[0].Week
	peak, valley := scores[0], scores[0]
	for i, s := range scores {
		if s > peak {
			peak = s
			peakWeek = teamMatchups[i].Week
		}
		if s < valley {
			valley = s
			valleyWeek = teamMatchups[i].Week
		}
	}

	hot, cold := streaks(scores, avg)

	volatility := 0.0
	if avg != 0 {
		volatility = std / avg * 100.0
	}

	return &ScoringTrends{
		TeamID:          teamMatchups[0].TeamID,
		TeamName:        teamMatchups[0].TeamName,
		WeeklyScores:    scores,
		AvgScore:        avg,
		ScoreStd:        std,
		TrendSlope:      trendSlope(scores),
		RecentAvg:       recentAverage(scores, avg),
		PeakWeek:        peakWeek,
		ValleyWeek:      valleyWeek,
		HotStreak:       hot,
		ColdStreak:      cold,
		VolatilityIndex: volatility,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// trendSlope fits an ordinary least-squares line to (week index, score)
// with week indices 1..K, returning the slope in points per week.
// Zero if there are fewer than two scores.
func trendSlope(scores []float64) float64 {
	k := len(scores)
	if k < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range scores {
		x := float64(i + 1)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	n := float64(k)
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// recentAverage is the mean of the last few scores, or the overall average
// when the season is shorter than the window
func recentAverage(scores []float64, avg float64) float64 {
	window := Config.RecentFormWindow
	if len(scores) < window {
		return avg
	}
	return mean(scores[len(scores)-window:])
}

// streaks counts consecutive above-average (hot) or at-or-below-average
// (cold) scores running backward from the most recent week. Exactly one of
// the two counts is non-zero for a non-empty input.
func streaks(scores []float64, avg float64) (hot int, cold int) {
	if len(scores) == 0 {
		return 0, 0
	}

	if scores[len(scores)-1] > avg {
		for i := len(scores) - 1; i >= 0; i-- {
			if scores[i] > avg {
				hot++
			} else {
				break
			}
		}
		return hot, 0
	}

	for i := len(scores) - 1; i >= 0; i-- {
		if scores[i] <= avg {
			cold++
		} else {
			break
		}
	}
	return 0, cold
}
