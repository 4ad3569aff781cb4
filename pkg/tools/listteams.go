package tools

import (
	"fmt"

	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
)

func ListTeamsTool() protocol.Tool {
	return protocol.Tool{
		Name: "list_teams",
		Description: `
		Lists the teams in the league with their current standings:
		manager, rank, win/loss record and points for. Use this to map a
		team name the user mentions onto a team id.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"league_key": {
					Type:        "string",
					Description: "Yahoo league key. Defaults to the configured league.",
				},
			},
			Required: []string{},
		},
	}
}

// HandleListTeamsTool fetches the league's team list and standings.
// Requires the authenticated API; the public fallback has no standings feed.
func HandleListTeamsTool(params any) (any, error) {
	paramsMap := asParamsMap(params)

	leagueKey, err := resolveLeagueKey(paramsMap)
	if err != nil {
		return nil, err
	}

	ds, err := luck.NewYahooDataSource()
	if err != nil {
		return nil, fmt.Errorf("listing teams requires Yahoo credentials: %w", err)
	}

	teams, err := ds.FetchLeagueTeams(leagueKey)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"leagueKey": leagueKey,
		"teams":     teams,
	}, nil
}
