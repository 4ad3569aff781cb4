package tools

import (
	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
)

func WeeklyBreakdownTool() protocol.Tool {
	return protocol.Tool{
		Name: "weekly_breakdown",
		Description: `
		Returns the luckiest and unluckiest matchup of every completed week,
		along with the raw per-team luck scores for each week.
		Use this for questions about a specific week rather than the season.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"league_key": {
					Type:        "string",
					Description: "Yahoo league key. Defaults to the configured league.",
				},
				"max_week": {
					Type:        "number",
					Description: "Highest week to scan for completed matchups (default 17)",
				},
			},
			Required: []string{},
		},
	}
}

// HandleWeeklyBreakdownTool returns per-week extremes for the league
func HandleWeeklyBreakdownTool(params any) (any, error) {
	paramsMap := asParamsMap(params)

	leagueKey, err := resolveLeagueKey(paramsMap)
	if err != nil {
		return nil, err
	}
	maxWeek := resolveMaxWeek(paramsMap)

	ds, err := getDataSource(leagueKey)
	if err != nil {
		return nil, err
	}

	breakdowns := luck.WeeklyBreakdowns(ds, leagueKey, maxWeek)

	return map[string]any{
		"leagueKey": leagueKey,
		"weeks":     breakdowns,
	}, nil
}
