package luck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaguePageHTML(stateJSON string) []byte {
	return []byte(fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Fantasy Football</title></head>
<body>
<div id="matchup-wall">rendered client side</div>
<script src="/static/app.js"></script>
<script id="league-state" type="application/json">%s</script>
</body>
</html>`, stateJSON))
}

const completedWeekState = `{
  "scoreboard": {
    "week": 3,
    "matchups": [
      {
        "status": "postevent",
        "winner_team_id": "1",
        "teams": [
          {"team_id": "1", "name": "Alpha", "points": "150.00"},
          {"team_id": "2", "name": "Bravo", "points": "140.00"}
        ]
      },
      {
        "status": "postevent",
        "winner_team_id": "3",
        "teams": [
          {"team_id": "3", "name": "Charlie", "points": "120.00"},
          {"team_id": "4", "name": "Delta", "points": "90.00"}
        ]
      }
    ]
  }
}`

func TestExtractPageState(t *testing.T) {
	state, err := extractPageState(leaguePageHTML(completedWeekState))
	require.NoError(t, err)

	assert.Equal(t, 3, state.Scoreboard.Week)
	require.Len(t, state.Scoreboard.Matchups, 2)
	assert.Equal(t, "postevent", state.Scoreboard.Matchups[0].Status)
	assert.Equal(t, 150.0, state.Scoreboard.Matchups[0].Teams[0].Points)
}

func TestExtractPageStateMissingScript(t *testing.T) {
	html := []byte(`<html><body><script src="/static/app.js"></script></body></html>`)
	_, err := extractPageState(html)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "league-state")
}

func TestExtractPageStateBadJSON(t *testing.T) {
	_, err := extractPageState(leaguePageHTML(`{"scoreboard": `))
	assert.Error(t, err)
}

func TestMatchupsFromPageState(t *testing.T) {
	state, err := extractPageState(leaguePageHTML(completedWeekState))
	require.NoError(t, err)

	matchups, err := matchupsFromPageState(state, "test.l.55", 3)
	require.NoError(t, err)
	require.Len(t, matchups, 4)

	byTeam := map[string]*WeeklyMatchup{}
	for _, m := range matchups {
		assert.Equal(t, "test.l.55", m.LeagueKey)
		assert.Equal(t, 3, m.Week)
		byTeam[m.TeamID] = m
	}

	assert.True(t, byTeam["1"].Won)
	assert.Equal(t, "Bravo", byTeam["1"].OpponentName)
	assert.Equal(t, 140.0, byTeam["1"].OpponentScore)
	assert.False(t, byTeam["4"].Won)
	assert.Equal(t, 120.0, byTeam["4"].OpponentScore)
}

func TestMatchupsFromPageStateUnfinishedWeek(t *testing.T) {
	inProgress := `{
  "scoreboard": {
    "week": 3,
    "matchups": [
      {
        "status": "postevent",
        "winner_team_id": "1",
        "teams": [
          {"team_id": "1", "name": "Alpha", "points": "150.00"},
          {"team_id": "2", "name": "Bravo", "points": "140.00"}
        ]
      },
      {
        "status": "midevent",
        "winner_team_id": "",
        "teams": [
          {"team_id": "3", "name": "Charlie", "points": "62.10"},
          {"team_id": "4", "name": "Delta", "points": "48.90"}
        ]
      }
    ]
  }
}`
	state, err := extractPageState(leaguePageHTML(inProgress))
	require.NoError(t, err)

	// One unfinished fixture empties the whole week
	matchups, err := matchupsFromPageState(state, "test.l.55", 3)
	require.NoError(t, err)
	assert.Empty(t, matchups)
}

func TestMatchupsFromPageStateMalformedTeams(t *testing.T) {
	lopsided := `{
  "scoreboard": {
    "week": 3,
    "matchups": [
      {
        "status": "postevent",
        "winner_team_id": "1",
        "teams": [
          {"team_id": "1", "name": "Alpha", "points": "150.00"}
        ]
      }
    ]
  }
}`
	state, err := extractPageState(leaguePageHTML(lopsided))
	require.NoError(t, err)

	_, err = matchupsFromPageState(state, "test.l.55", 3)
	assert.Error(t, err)
}
