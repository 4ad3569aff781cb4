package luck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreboardDoc(status1, winner1, status2, winner2 string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <league_key>461.l.12345</league_key>
    <scoreboard>
      <matchups count="2">
        <matchup>
          <status>%s</status>
          <winner_team_key>%s</winner_team_key>
          <teams count="2">
            <team>
              <team_key>461.l.12345.t.1</team_key>
              <team_id>1</team_id>
              <name>Alpha</name>
              <team_points><total>150.00</total></team_points>
            </team>
            <team>
              <team_key>461.l.12345.t.2</team_key>
              <team_id>2</team_id>
              <name>Bravo</name>
              <team_points><total>140.00</total></team_points>
            </team>
          </teams>
        </matchup>
        <matchup>
          <status>%s</status>
          <winner_team_key>%s</winner_team_key>
          <teams count="2">
            <team>
              <team_key>461.l.12345.t.3</team_key>
              <team_id>3</team_id>
              <name>Charlie</name>
              <team_points><total>120.00</total></team_points>
            </team>
            <team>
              <team_key>461.l.12345.t.4</team_key>
              <team_id>4</team_id>
              <name>Delta</name>
              <team_points><total>90.00</total></team_points>
            </team>
          </teams>
        </matchup>
      </matchups>
    </scoreboard>
  </league>
</fantasy_content>`, status1, winner1, status2, winner2))
}

func TestParseScoreboardMirroredPairs(t *testing.T) {
	data := scoreboardDoc("postevent", "461.l.12345.t.1", "postevent", "461.l.12345.t.3")

	matchups, err := ParseScoreboard(data, "461.l.12345", 1)
	require.NoError(t, err)
	require.Len(t, matchups, 4)

	byTeam := map[string]*WeeklyMatchup{}
	for _, m := range matchups {
		assert.Equal(t, 1, m.Week)
		assert.Equal(t, "461.l.12345", m.LeagueKey)
		byTeam[m.TeamID] = m
	}

	alpha := byTeam["1"]
	require.NotNil(t, alpha)
	assert.Equal(t, "Alpha", alpha.TeamName)
	assert.Equal(t, 150.0, alpha.TeamScore)
	assert.Equal(t, "Bravo", alpha.OpponentName)
	assert.Equal(t, 140.0, alpha.OpponentScore)
	assert.True(t, alpha.Won)

	bravo := byTeam["2"]
	require.NotNil(t, bravo)
	assert.False(t, bravo.Won)
	// The two sides mirror each other exactly
	assert.Equal(t, alpha.TeamScore, bravo.OpponentScore)
	assert.Equal(t, alpha.OpponentScore, bravo.TeamScore)

	assert.True(t, byTeam["3"].Won)
	assert.False(t, byTeam["4"].Won)
}

func TestParseScoreboardMidEventWeekIsEmpty(t *testing.T) {
	data := scoreboardDoc("postevent", "461.l.12345.t.1", "midevent", "")

	matchups, err := ParseScoreboard(data, "461.l.12345", 5)
	require.NoError(t, err)
	assert.Empty(t, matchups)
}

func TestParseScoreboardMissingWinnerIsEmpty(t *testing.T) {
	data := scoreboardDoc("postevent", "461.l.12345.t.1", "postevent", "")

	matchups, err := ParseScoreboard(data, "461.l.12345", 5)
	require.NoError(t, err)
	assert.Empty(t, matchups)
}

func TestParseScoreboardMalformedXML(t *testing.T) {
	_, err := ParseScoreboard([]byte("not xml at all <"), "461.l.12345", 1)
	assert.Error(t, err)
}

func TestParseStandings(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<fantasy_content xmlns="http://fantasysports.yahooapis.com/fantasy/v2/base.rng">
  <league>
    <standings>
      <teams count="2">
        <team>
          <team_id>1</team_id>
          <name>Alpha</name>
          <managers><manager><nickname>Rich</nickname></manager></managers>
          <team_standings>
            <rank>1</rank>
            <outcome_totals><wins>8</wins><losses>3</losses></outcome_totals>
            <points_for>1456.32</points_for>
          </team_standings>
        </team>
        <team>
          <team_id>2</team_id>
          <name>Bravo</name>
          <managers><manager><nickname>Sam</nickname></manager></managers>
          <team_standings>
            <rank>2</rank>
            <outcome_totals><wins>6</wins><losses>5</losses></outcome_totals>
            <points_for>1390.10</points_for>
          </team_standings>
        </team>
      </teams>
    </standings>
  </league>
</fantasy_content>`)

	teams, err := ParseStandings(data, "461.l.12345")
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "1", teams[0].ID)
	assert.Equal(t, "Alpha", teams[0].Name)
	assert.Equal(t, "Rich", teams[0].Manager)
	assert.Equal(t, 8, teams[0].Wins)
	assert.Equal(t, 3, teams[0].Losses)
	assert.Equal(t, 1, teams[0].Rank)
	assert.InDelta(t, 1456.32, teams[0].PointsFor, 1e-9)
}
