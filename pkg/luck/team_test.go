package luck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leagueTeams() []*Team {
	return []*Team{
		{ID: "1", Name: "Gridiron Gurus"},
		{ID: "2", Name: "Bench Warmers"},
		{ID: "3", Name: "Waiver Wire Warriors"},
	}
}

func TestFindTeamByID(t *testing.T) {
	team, err := FindTeam(leagueTeams(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Bench Warmers", team.Name)
}

func TestFindTeamByExactName(t *testing.T) {
	team, err := FindTeam(leagueTeams(), "gridiron gurus")
	require.NoError(t, err)
	assert.Equal(t, "1", team.ID)
}

func TestFindTeamByPartialName(t *testing.T) {
	team, err := FindTeam(leagueTeams(), "bench")
	require.NoError(t, err)
	assert.Equal(t, "2", team.ID)
}

func TestFindTeamAmbiguousPartial(t *testing.T) {
	// "w" appears in two team names
	_, err := FindTeam(leagueTeams(), "war")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestFindTeamNoMatch(t *testing.T) {
	_, err := FindTeam(leagueTeams(), "touchdown")
	assert.Error(t, err)
}

func TestFindTeamEmptyQuery(t *testing.T) {
	_, err := FindTeam(leagueTeams(), "")
	assert.Error(t, err)
}
