package luck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourTeamWeek builds the mirrored records for a week where
// A 150 beat B 140 and C 120 beat D 90
func fourTeamWeek() []*WeeklyMatchup {
	return []*WeeklyMatchup{
		{Week: 1, TeamID: "a", TeamName: "TeamA", TeamScore: 150, OpponentID: "b", OpponentName: "TeamB", OpponentScore: 140, Won: true},
		{Week: 1, TeamID: "b", TeamName: "TeamB", TeamScore: 140, OpponentID: "a", OpponentName: "TeamA", OpponentScore: 150, Won: false},
		{Week: 1, TeamID: "c", TeamName: "TeamC", TeamScore: 120, OpponentID: "d", OpponentName: "TeamD", OpponentScore: 90, Won: true},
		{Week: 1, TeamID: "d", TeamName: "TeamD", TeamScore: 90, OpponentID: "c", OpponentName: "TeamC", OpponentScore: 120, Won: false},
	}
}

func TestComputeWeeklyLuckFourTeams(t *testing.T) {
	scores := ComputeWeeklyLuck(fourTeamWeek())
	require.Len(t, scores, 4)

	// TeamB lost with the second best score in the field against the top
	// scorer: expected 2/3, actual 0, opponent percentile 1.0
	assert.InDelta(t, -76.67, scores["b"], 0.01)

	// TeamD's loss matches its last place rank, and its opponent was weak
	assert.InDelta(t, 3.33, scores["d"], 0.01)

	// TeamA won as top scorer against a strong opponent
	assert.InDelta(t, -3.33, scores["a"], 0.01)

	// TeamC won from third place against the weakest team
	assert.InDelta(t, 76.67, scores["c"], 0.01)
}

func TestWeeklyLuckLoserRankMatters(t *testing.T) {
	scores := ComputeWeeklyLuck(fourTeamWeek())

	// Both lost, but TeamB's loss was far less deserved than TeamD's
	assert.Negative(t, scores["b"])
	assert.Less(t, scores["b"], scores["d"])
}

func TestCombinatorialIdentity(t *testing.T) {
	matchups := fourTeamWeek()
	n := len(matchups)

	// Sum of teams_would_beat across the field equals the number of
	// ordered pairs where one score strictly exceeds another
	sumBeat := 0.0
	for _, m := range matchups {
		sumBeat += expectedWinPctForScore(m.TeamScore, m.TeamID, matchups, n) * float64(n-1)
	}

	orderedPairs := 0
	for _, x := range matchups {
		for _, y := range matchups {
			if x.TeamID != y.TeamID && x.TeamScore > y.TeamScore {
				orderedPairs++
			}
		}
	}

	assert.InDelta(t, float64(orderedPairs), sumBeat, 1e-9)
}

func TestWeeklyLuckExactTie(t *testing.T) {
	matchups := []*WeeklyMatchup{
		{Week: 1, TeamID: "a", TeamName: "TeamA", TeamScore: 100, OpponentID: "b", OpponentName: "TeamB", OpponentScore: 100, Won: false},
		{Week: 1, TeamID: "b", TeamName: "TeamB", TeamScore: 100, OpponentID: "a", OpponentName: "TeamA", OpponentScore: 100, Won: false},
	}

	// Neither side counts as having beaten the other
	assert.Equal(t, 0.0, expectedWinPctForScore(100, "a", matchups, 2))
	assert.Equal(t, 0.0, expectedWinPctForScore(100, "b", matchups, 2))

	scores := ComputeWeeklyLuck(matchups)
	// actual 0, expected 0, opponent percentile 0 gives +10 for each side
	assert.InDelta(t, 10.0, scores["a"], 0.01)
	assert.InDelta(t, scores["a"], scores["b"], 1e-9)
}

func TestWeeklyLuckSingleTeamWeek(t *testing.T) {
	matchups := []*WeeklyMatchup{
		{Week: 1, TeamID: "a", TeamName: "TeamA", TeamScore: 100, OpponentID: "x", OpponentName: "Ghost", OpponentScore: 90, Won: true},
	}

	scores := ComputeWeeklyLuck(matchups)
	require.Len(t, scores, 1)

	// Neutral fallbacks: expected 0.5, opponent percentile 0.5
	assert.InDelta(t, 50.0, scores["a"], 0.01)
}

func TestWeeklyLuckEmptyWeek(t *testing.T) {
	scores := ComputeWeeklyLuck(nil)
	assert.Empty(t, scores)
}
