package tools

import (
	"fmt"

	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
	"github.com/will8807/ggg-luck/pkg/report"
)

func LuckReportTool() protocol.Tool {
	return protocol.Tool{
		Name: "luck_report",
		Description: `
		Generates the full markdown luck report for the league (rankings
		table, extreme weeks, weekly breakdowns, methodology) plus SVG
		charts, writes them to disk, and returns the markdown content and
		the file paths.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"league_key": {
					Type:        "string",
					Description: "Yahoo league key. Defaults to the configured league.",
				},
				"league_name": {
					Type:        "string",
					Description: "Display name used in the report heading",
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

// HandleLuckReportTool renders the markdown report and chart set
func HandleLuckReportTool(params any) (any, error) {
	paramsMap := asParamsMap(params)

	leagueKey, err := resolveLeagueKey(paramsMap)
	if err != nil {
		return nil, err
	}
	maxWeek := resolveMaxWeek(paramsMap)

	leagueName, _ := paramsMap["league_name"].(string)
	if leagueName == "" {
		leagueName = leagueKey
	}

	ds, err := getDataSource(leagueKey)
	if err != nil {
		return nil, err
	}

	metrics := luck.AnalyzeSeasonLuck(ds, leagueKey, maxWeek)
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no completed weeks available for league %s", leagueKey)
	}
	breakdowns := luck.WeeklyBreakdowns(ds, leagueKey, maxWeek)

	reportPath, err := report.WriteMarkdownReport(metrics, breakdowns, leagueName)
	if err != nil {
		return nil, err
	}

	chartPaths, err := report.GenerateCharts(metrics, luck.Config.ReportOutputPath)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"markdown":   report.GenerateMarkdownReport(metrics, breakdowns, leagueName),
		"reportPath": reportPath,
		"chartPaths": chartPaths,
	}, nil
}
