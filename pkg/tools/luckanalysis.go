package tools

import (
	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
)

func LuckAnalysisTool() protocol.Tool {
	return protocol.Tool{
		Name: "luck_analysis",
		Description: `
		Runs a full season luck analysis for a fantasy football league.
		For every team it computes a luck score per week (was the win/loss
		deserved given the team's score rank, adjusted for opponent strength),
		the season total, the deserved win/loss record, and scoring trends.
		Teams are returned most unlucky first.
		Use this when the user asks who has been lucky or unlucky this season,
		or what a team's record should have been.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"league_key": {
					Type:        "string",
					Description: "Yahoo league key, eg 461.l.12345. Defaults to the configured league.",
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

// HandleLuckAnalysisTool runs the season aggregation and returns the
// sorted metrics
func HandleLuckAnalysisTool(params any) (any, error) {
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

	logger.Info("Running luck analysis", leagueKey, maxWeek)
	metrics := luck.AnalyzeSeasonLuck(ds, leagueKey, maxWeek)

	return map[string]any{
		"leagueKey": leagueKey,
		"teams":     metrics,
	}, nil
}
