package tools

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/protocol"
	"github.com/will8807/ggg-luck/pkg/transport"
)

func LeaguePageTool() protocol.Tool {
	return protocol.Tool{
		Name: "league_page",
		Description: `
		Fetches the league's public matchup page for a given week and
		converts it to markdown. Useful for context the structured tools
		don't carry, such as matchup commentary or projected scores.
		`,
		InputSchema: protocol.InputSchema{
			Type: "object",
			Properties: map[string]protocol.ToolProperty{
				"league_id": {
					Type:        "string",
					Description: "Public numeric league id (the last segment of the league key)",
				},
				"week": {
					Type:        "number",
					Description: "Week number to fetch",
				},
			},
			Required: []string{"league_id", "week"},
		},
	}
}

// HandleLeaguePageTool fetches the public page and converts it to markdown
func HandleLeaguePageTool(params any) (any, error) {
	paramsMap := asParamsMap(params)

	leagueID, ok := paramsMap["league_id"].(string)
	if !ok || leagueID == "" {
		return nil, fmt.Errorf("no league_id was given")
	}
	weekF, ok := paramsMap["week"].(float64)
	if !ok || weekF < 1 {
		return nil, fmt.Errorf("no valid week was given")
	}

	pageUrl := fmt.Sprintf(luck.Config.PublicLeagueUrl, leagueID, int(weekF))
	logger.Info("Getting HTML from:", pageUrl)

	body, err := transport.GetHtml(pageUrl)
	if err != nil {
		return nil, err
	}

	markdown, err := htmltomarkdown.ConvertString(
		string(body),
		converter.WithDomain("https://football.fantasysports.yahoo.com"),
	)
	if err != nil {
		logger.Error("Failed to convert HTML to Markdown:", err)
		return nil, err
	}

	const maxLength = 10000
	if len(markdown) > maxLength {
		markdown = markdown[:maxLength] + "\n\n... (content truncated due to size)"
	}

	return map[string]any{
		"markdown": markdown,
		"url":      pageUrl,
	}, nil
}
