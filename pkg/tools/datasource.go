package tools

import (
	"fmt"
	"strings"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
)

// getDataSource builds the matchup datasource for tool handlers. OAuth
// credentials in the environment get the authenticated API; otherwise we
// fall back to scraping the public league page.
func getDataSource(leagueKey string) (luck.WeekDataSource, error) {
	ds, err := luck.NewYahooDataSource()
	if err == nil {
		return ds, nil
	}

	logger.Warn("No Yahoo credentials, falling back to public scraping", err)

	leagueID := publicLeagueID(leagueKey)
	if leagueID == "" {
		return nil, fmt.Errorf("no usable league identifier: %w", err)
	}
	return luck.NewPublicDataSource(leagueID), nil
}

// publicLeagueID extracts the numeric league id from a full league key
// such as "461.l.12345"
func publicLeagueID(leagueKey string) string {
	parts := strings.Split(leagueKey, ".")
	return parts[len(parts)-1]
}

// resolveLeagueKey returns the explicit key if given, else the configured one
func resolveLeagueKey(paramsMap map[string]interface{}) (string, error) {
	if key, ok := paramsMap["league_key"].(string); ok && key != "" {
		return key, nil
	}
	if luck.Config.LeagueKey != "" {
		return luck.Config.LeagueKey, nil
	}
	return "", fmt.Errorf("no league_key given and none configured")
}

// resolveMaxWeek returns the explicit max week if given, else the configured one
func resolveMaxWeek(paramsMap map[string]interface{}) int {
	if w, ok := paramsMap["max_week"].(float64); ok && w >= 1 {
		return int(w)
	}
	return luck.Config.MaxWeek
}

// asParamsMap coerces the generic handler params into a map
func asParamsMap(params any) map[string]interface{} {
	if m, ok := params.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
