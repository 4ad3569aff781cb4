package tools

import (
	"fmt"

	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
)

func TeamTrendsTool() protocol.Tool {
	return protocol.Tool{
		Name: "team_trends",
		Description: `
		Returns scoring trends for one team in the league: average score,
		standard deviation, trend slope (points per week), recent form,
		peak and valley weeks, hot or cold streak length, and volatility.
		The team may be given by id, exact name, or a unique partial name.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"team": {
					Type:        "string",
					Description: "Team id or (partial) team name",
				},
				"league_key": {
					Type:        "string",
					Description: "Yahoo league key. Defaults to the configured league.",
				},
				"max_week": {
					Type:        "number",
					Description: "Highest week to scan for completed matchups (default 17)",
				},
			},
			Required: []string{"team"},
		},
	}
}

// HandleTeamTrendsTool locates the requested team in the analysis output
// and returns its luck metrics and trends
func HandleTeamTrendsTool(params any) (any, error) {
	paramsMap := asParamsMap(params)

	query, ok := paramsMap["team"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("no team was given")
	}

	leagueKey, err := resolveLeagueKey(paramsMap)
	if err != nil {
		return nil, err
	}
	maxWeek := resolveMaxWeek(paramsMap)

	ds, err := getDataSource(leagueKey)
	if err != nil {
		return nil, err
	}

	metrics := luck.AnalyzeSeasonLuck(ds, leagueKey, maxWeek)
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no completed weeks available for league %s", leagueKey)
	}

	var teams []*luck.Team
	for _, m := range metrics {
		teams = append(teams, &luck.Team{LeagueKey: leagueKey, ID: m.TeamID, Name: m.TeamName})
	}

	team, err := luck.FindTeam(teams, query)
	if err != nil {
		return nil, err
	}

	for _, m := range metrics {
		if m.TeamID == team.ID {
			return map[string]any{
				"team":    m.TeamName,
				"metrics": m,
				"trends":  m.Trends,
			}, nil
		}
	}

	return nil, fmt.Errorf("team %s has no analysis data", team.Name)
}
