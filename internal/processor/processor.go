package processor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/luck"
	"github.com/will8807/ggg-luck/pkg/report"
	"github.com/will8807/ggg-luck/pkg/tools"
)

// Request is a plain-text query wrapped in JSON, as produced by the CLI
type Request struct {
	Query     string `json:"query"`
	RequestID string `json:"requestId"`
}

// Response wraps a command's result for the CLI
type Response struct {
	RequestID string      `json:"requestId,omitempty"`
	Result    interface{} `json:"result,omitempty"`
	Commands  []string    `json:"commands,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// createErrorResponse creates an error response
func createErrorResponse(code, message string) ([]byte, error) {
	var response ErrorResponse
	response.Error.Code = code
	response.Error.Message = message

	return json.MarshalIndent(response, "", "  ")
}

// ProcessRequest parses a CLI query and dispatches it to the matching tool
// handler. Known commands:
//
//	analyze [maxWeek]
//	display [maxWeek]
//	breakdown [maxWeek]
//	report [leagueName]
//	trends <team>
//	teams
func ProcessRequest(input []byte) ([]byte, error) {
	var request Request
	if err := json.Unmarshal(input, &request); err != nil {
		logger.Error("Failed to parse input JSON", err)
		return createErrorResponse("invalid_request", fmt.Sprintf("Invalid JSON: %v", err))
	}

	logger.Info("Processing request", request.Query)

	fields := strings.Fields(request.Query)
	if len(fields) == 0 {
		return usageResponse(request.RequestID)
	}

	var result any
	var err error

	switch fields[0] {
	case "analyze":
		result, err = tools.HandleLuckAnalysisTool(withMaxWeek(fields))
	case "display":
		result, err = tools.HandleLuckAnalysisTool(withMaxWeek(fields))
		if err == nil {
			result = renderAnalysis(result)
		}
	case "breakdown":
		result, err = tools.HandleWeeklyBreakdownTool(withMaxWeek(fields))
	case "report":
		params := map[string]interface{}{}
		if len(fields) > 1 {
			params["league_name"] = strings.Join(fields[1:], " ")
		}
		result, err = tools.HandleLuckReportTool(params)
	case "trends":
		if len(fields) < 2 {
			return createErrorResponse("invalid_request", "trends requires a team name or id")
		}
		result, err = tools.HandleTeamTrendsTool(map[string]interface{}{
			"team": strings.Join(fields[1:], " "),
		})
		if err == nil {
			result = renderTrends(result)
		}
	case "teams":
		result, err = tools.HandleListTeamsTool(map[string]interface{}{})
	default:
		return usageResponse(request.RequestID)
	}

	if err != nil {
		logger.Error("Command failed", fields[0], err)
		return createErrorResponse("command_failed", err.Error())
	}

	response := Response{
		RequestID: request.RequestID,
		Result:    result,
	}

	jsonResult, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal response to JSON", err)
		return createErrorResponse("internal_error", "Failed to create response")
	}

	return jsonResult, nil
}

// renderAnalysis replaces the structured analysis result with the ranked
// plain-text table for terminal output
func renderAnalysis(result any) any {
	m, ok := result.(map[string]any)
	if !ok {
		return result
	}
	metrics, ok := m["teams"].([]*luck.LuckMetrics)
	if !ok {
		return result
	}
	var sb strings.Builder
	report.DisplayLuckAnalysis(&sb, metrics)
	return sb.String()
}

// renderTrends attaches a plain-text momentum summary to the trends result
func renderTrends(result any) any {
	m, ok := result.(map[string]any)
	if !ok {
		return result
	}
	trends, ok := m["trends"].(*luck.ScoringTrends)
	if !ok {
		return result
	}
	var sb strings.Builder
	report.DisplayTeamTrends(&sb, trends)
	m["display"] = sb.String()
	return m
}

// withMaxWeek parses an optional trailing week count into tool params
func withMaxWeek(fields []string) map[string]interface{} {
	params := map[string]interface{}{}
	if len(fields) > 1 {
		if w, err := strconv.Atoi(fields[1]); err == nil {
			params["max_week"] = float64(w)
		}
	}
	return params
}

// usageResponse lists the supported commands
func usageResponse(requestID string) ([]byte, error) {
	response := Response{
		RequestID: requestID,
		Commands: []string{
			"analyze [maxWeek]   - full season luck analysis",
			"display [maxWeek]   - season luck analysis as a plain-text table",
			"breakdown [maxWeek] - luckiest/unluckiest matchup per week",
			"report [name]       - write markdown report and charts",
			"trends <team>       - scoring trends for one team",
			"teams               - list league teams and standings",
		},
	}
	return json.MarshalIndent(response, "", "  ")
}
