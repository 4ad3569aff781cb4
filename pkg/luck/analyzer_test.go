package luck

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataSource serves canned weeks and can be told to fail a given week
// either always or only after its first successful fetch
type fakeDataSource struct {
	weeks         map[int][]*WeeklyMatchup
	failWeeks     map[int]bool
	failOnRefetch map[int]bool
	fetchCount    map[int]int
}

func newFakeDataSource(weeks map[int][]*WeeklyMatchup) *fakeDataSource {
	return &fakeDataSource{
		weeks:         weeks,
		failWeeks:     map[int]bool{},
		failOnRefetch: map[int]bool{},
		fetchCount:    map[int]int{},
	}
}

func (f *fakeDataSource) FetchWeekMatchups(leagueKey string, week int) ([]*WeeklyMatchup, error) {
	f.fetchCount[week]++
	if f.failWeeks[week] {
		return nil, fmt.Errorf("week %d unavailable", week)
	}
	if f.failOnRefetch[week] && f.fetchCount[week] > 1 {
		return nil, fmt.Errorf("week %d failed on refetch", week)
	}
	return f.weeks[week], nil
}

// pairedWeek builds mirrored records for two fixtures in the given week
func pairedWeek(week int, aScore, bScore, cScore, dScore float64) []*WeeklyMatchup {
	mk := func(id, name string, s float64, oid, oname string, os float64) *WeeklyMatchup {
		return &WeeklyMatchup{
			Week: week, TeamID: id, TeamName: name, TeamScore: s,
			OpponentID: oid, OpponentName: oname, OpponentScore: os,
			Won: s > os,
		}
	}
	return []*WeeklyMatchup{
		mk("a", "TeamA", aScore, "b", "TeamB", bScore),
		mk("b", "TeamB", bScore, "a", "TeamA", aScore),
		mk("c", "TeamC", cScore, "d", "TeamD", dScore),
		mk("d", "TeamD", dScore, "c", "TeamC", cScore),
	}
}

func seasonWeeks() map[int][]*WeeklyMatchup {
	return map[int][]*WeeklyMatchup{
		1: pairedWeek(1, 150, 140, 120, 90),
		2: pairedWeek(2, 100, 125, 130, 95),
		3: pairedWeek(3, 115, 105, 85, 140),
	}
}

func TestAnalyzeSeasonEmptyLeague(t *testing.T) {
	ds := newFakeDataSource(map[int][]*WeeklyMatchup{})
	metrics := AnalyzeSeasonLuck(ds, "test.l.1", 17)
	assert.Empty(t, metrics)
}

func TestAnalyzeSeasonInvariants(t *testing.T) {
	ds := newFakeDataSource(seasonWeeks())
	metrics := AnalyzeSeasonLuck(ds, "test.l.1", 17)
	require.Len(t, metrics, 4)

	for _, m := range metrics {
		assert.Equal(t, 3, m.WeeksPlayed, m.TeamName)
		assert.Equal(t, m.WeeksPlayed, m.ShouldHaveWins+m.ShouldHaveLosses, m.TeamName)
		assert.Equal(t, m.WeeksPlayed, m.ActualWins+m.ActualLosses, m.TeamName)
		assert.InDelta(t, m.TotalLuckScore, m.AvgLuckPerWeek*float64(m.WeeksPlayed), 1e-9, m.TeamName)
		assert.Equal(t, m.ActualWins-m.ShouldHaveWins, m.LuckDifferential, m.TeamName)
		require.NotNil(t, m.LuckiestWeek, m.TeamName)
		require.NotNil(t, m.UnluckiestWeek, m.TeamName)
		require.NotNil(t, m.Trends, m.TeamName)
		assert.Len(t, m.Trends.WeeklyScores, 3, m.TeamName)
	}
}

func TestAnalyzeSeasonSortedMostUnluckyFirst(t *testing.T) {
	ds := newFakeDataSource(seasonWeeks())
	metrics := AnalyzeSeasonLuck(ds, "test.l.1", 17)
	require.NotEmpty(t, metrics)

	for i := 1; i < len(metrics); i++ {
		assert.LessOrEqual(t, metrics[i-1].TotalLuckScore, metrics[i].TotalLuckScore)
	}
}

func TestAnalyzeSeasonIdempotent(t *testing.T) {
	weeks := seasonWeeks()
	first := AnalyzeSeasonLuck(newFakeDataSource(weeks), "test.l.1", 17)
	second := AnalyzeSeasonLuck(newFakeDataSource(weeks), "test.l.1", 17)

	require.Equal(t, len(first), len(second))
	assert.True(t, reflect.DeepEqual(first, second))
}

func TestCompletionScanStopsAtGap(t *testing.T) {
	weeks := seasonWeeks()
	// Week 3 present in the source but the league also "has" week 4 data;
	// an empty week 3 must end the scan before week 4 is considered
	weeks[4] = pairedWeek(4, 100, 90, 80, 70)
	ds := newFakeDataSource(weeks)
	ds.weeks[3] = nil

	completed := CompletedWeeks(ds, "test.l.1", 17)
	assert.Equal(t, []int{1, 2}, completed)

	metrics := AnalyzeSeasonLuck(ds, "test.l.1", 17)
	require.Len(t, metrics, 4)
	for _, m := range metrics {
		assert.Equal(t, 2, m.WeeksPlayed, m.TeamName)
	}
}

func TestCompletionScanStopsOnError(t *testing.T) {
	ds := newFakeDataSource(seasonWeeks())
	ds.failWeeks[2] = true

	completed := CompletedWeeks(ds, "test.l.1", 17)
	assert.Equal(t, []int{1}, completed)
}

func TestConfirmedWeekFetchFailureIsOmitted(t *testing.T) {
	ds := newFakeDataSource(seasonWeeks())
	// Week 2 confirms during the scan, then fails on the re-fetch
	ds.failOnRefetch[2] = true

	metrics := AnalyzeSeasonLuck(ds, "test.l.1", 17)
	require.Len(t, metrics, 4)

	// Weeks 1 and 3 still contribute; week 2 is silently dropped
	for _, m := range metrics {
		assert.Equal(t, 2, m.WeeksPlayed, m.TeamName)
		assert.Equal(t, m.WeeksPlayed, m.ShouldHaveWins+m.ShouldHaveLosses, m.TeamName)
	}
}

func TestLuckiestWeekFirstOccurrenceOnTies(t *testing.T) {
	// Two identical weeks give identical weekly luck; the earlier week wins
	weeks := map[int][]*WeeklyMatchup{
		1: pairedWeek(1, 150, 140, 120, 90),
		2: pairedWeek(2, 150, 140, 120, 90),
	}
	metrics := AnalyzeSeasonLuck(newFakeDataSource(weeks), "test.l.1", 17)
	require.Len(t, metrics, 4)

	for _, m := range metrics {
		assert.Equal(t, 1, m.LuckiestWeek.Week, m.TeamName)
		assert.Equal(t, 1, m.UnluckiestWeek.Week, m.TeamName)
	}
}

func TestWeeklyBreakdowns(t *testing.T) {
	ds := newFakeDataSource(map[int][]*WeeklyMatchup{
		1: pairedWeek(1, 150, 140, 120, 90),
	})

	breakdowns := WeeklyBreakdowns(ds, "test.l.1", 17)
	require.Len(t, breakdowns, 1)

	bd := breakdowns[0]
	assert.Equal(t, 1, bd.Week)
	require.NotNil(t, bd.Luckiest)
	require.NotNil(t, bd.Unluckiest)

	// TeamC's cheap win was the luckiest, TeamB's strong loss the unluckiest
	assert.Equal(t, "TeamC", bd.Luckiest.TeamName)
	assert.Equal(t, "TeamB", bd.Unluckiest.TeamName)
	assert.Len(t, bd.LuckScores, 4)
}
