package luck

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/transport"
)

// PublicDataSource scrapes a league's public matchup page when no OAuth
// credentials are available. Yahoo renders the scoreboard client side from a
// JSON blob embedded in the page, so we pull the script tag out with goquery
// and decode the state directly rather than parsing rendered markup.
type PublicDataSource struct {
	// LeagueID is the public numeric league id, not the full league key
	LeagueID string
}

// NewPublicDataSource builds a scraping datasource for a public league
func NewPublicDataSource(leagueID string) *PublicDataSource {
	return &PublicDataSource{LeagueID: leagueID}
}

// pageMatchup mirrors the relevant slice of the page's embedded JSON state
type pageMatchup struct {
	Status string `json:"status"`
	Winner string `json:"winner_team_id"`
	Teams  []struct {
		TeamID string  `json:"team_id"`
		Name   string  `json:"name"`
		Points float64 `json:"points,string"`
	} `json:"teams"`
}

type pageState struct {
	Scoreboard struct {
		Week     int           `json:"week"`
		Matchups []pageMatchup `json:"matchups"`
	} `json:"scoreboard"`
}

// FetchWeekMatchups implements WeekDataSource by scraping the public
// scoreboard page for the given week
func (p *PublicDataSource) FetchWeekMatchups(leagueKey string, week int) ([]*WeeklyMatchup, error) {
	cached, err := CachedWeekMatchups(leagueKey, week)
	if err != nil {
		logger.Warn("Matchup cache lookup failed", err)
	} else if len(cached) > 0 {
		logger.Debug("Serving week from cache", week)
		return cached, nil
	}

	pageUrl := fmt.Sprintf(Config.PublicLeagueUrl, p.LeagueID, week)
	htmlContent, err := transport.GetHtml(pageUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public league page: %w", err)
	}

	state, err := extractPageState(htmlContent)
	if err != nil {
		return nil, err
	}

	matchups, err := matchupsFromPageState(state, leagueKey, week)
	if err != nil {
		return nil, err
	}

	if len(matchups) > 0 {
		if err := SaveWeekMatchups(matchups); err != nil {
			logger.Warn("Failed to cache week matchups", week, err)
		}
	}

	return matchups, nil
}

// extractPageState finds the embedded JSON state script in the page HTML
func extractPageState(htmlContent []byte) (*pageState, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(htmlContent)))
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	var scriptData string
	doc.Find("script#league-state").Each(func(i int, s *goquery.Selection) {
		scriptData = s.Text()
	})

	if scriptData == "" {
		return nil, fmt.Errorf("could not find league-state script tag")
	}

	var state pageState
	if err := json.Unmarshal([]byte(scriptData), &state); err != nil {
		return nil, fmt.Errorf("error parsing embedded JSON state: %w", err)
	}
	return &state, nil
}

// matchupsFromPageState applies the same completion gate as the API
// datasource: every fixture finished with a winner, or the week is empty
func matchupsFromPageState(state *pageState, leagueKey string, week int) ([]*WeeklyMatchup, error) {
	raw := state.Scoreboard.Matchups
	if len(raw) == 0 {
		return nil, nil
	}

	for _, m := range raw {
		if m.Status != "postevent" || m.Winner == "" {
			logger.Debug("Week has unfinished fixtures", week, m.Status)
			return nil, nil
		}
	}

	var matchups []*WeeklyMatchup
	for _, m := range raw {
		if len(m.Teams) != 2 {
			return nil, fmt.Errorf("malformed matchup in week %d: expected 2 teams, got %d", week, len(m.Teams))
		}
		a, b := m.Teams[0], m.Teams[1]
		matchups = append(matchups,
			&WeeklyMatchup{
				LeagueKey:     leagueKey,
				Week:          week,
				TeamID:        a.TeamID,
				TeamName:      a.Name,
				TeamScore:     a.Points,
				OpponentID:    b.TeamID,
				OpponentName:  b.Name,
				OpponentScore: b.Points,
				Won:           a.Points > b.Points,
			},
			&WeeklyMatchup{
				LeagueKey:     leagueKey,
				Week:          week,
				TeamID:        b.TeamID,
				TeamName:      b.Name,
				TeamScore:     b.Points,
				OpponentID:    a.TeamID,
				OpponentName:  a.Name,
				OpponentScore: a.Points,
				Won:           b.Points > a.Points,
			},
		)
	}

	return matchups, nil
}
