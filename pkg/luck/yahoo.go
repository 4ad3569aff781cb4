package luck

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/pkg/transport"
)

// YahooDataSource fetches league data from the Yahoo fantasy sports API.
// Completed weeks are cached in sqlite so repeated analyses of the same
// season do not refetch.
type YahooDataSource struct {
	clientID     string
	clientSecret string
	refreshToken string

	accessToken string
	tokenExpiry time.Time
}

// NewYahooDataSource builds a datasource from OAuth credentials in the
// environment (YAHOO_CLIENT_ID, YAHOO_CLIENT_SECRET, YAHOO_REFRESH_TOKEN)
func NewYahooDataSource() (*YahooDataSource, error) {
	ds := &YahooDataSource{
		clientID:     os.Getenv("YAHOO_CLIENT_ID"),
		clientSecret: os.Getenv("YAHOO_CLIENT_SECRET"),
		refreshToken: os.Getenv("YAHOO_REFRESH_TOKEN"),
	}
	if ds.clientID == "" || ds.clientSecret == "" || ds.refreshToken == "" {
		return nil, fmt.Errorf("missing Yahoo OAuth credentials in environment")
	}
	return ds, nil
}

/////////////////////////////////////////////////////////////////////////
////// OAuth
/////////////////////////////////////////////////////////////////////////

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// getAccessToken exchanges the long-lived refresh token for an access token,
// reusing the current one until shortly before it expires
func (ds *YahooDataSource) getAccessToken() (string, error) {
	if ds.accessToken != "" && time.Now().Before(ds.tokenExpiry) {
		return ds.accessToken, nil
	}

	values := url.Values{}
	values.Set("client_id", ds.clientID)
	values.Set("client_secret", ds.clientSecret)
	values.Set("refresh_token", ds.refreshToken)
	values.Set("grant_type", "refresh_token")
	values.Set("redirect_uri", "oob")

	body, err := transport.PostForm(Config.YahooTokenUrl, values)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	ds.accessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		ds.refreshToken = tok.RefreshToken
	}
	// Refresh one minute early
	ds.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn-60) * time.Second)

	logger.Debug("Obtained Yahoo access token, expires in", tok.ExpiresIn)
	return ds.accessToken, nil
}

/////////////////////////////////////////////////////////////////////////
////// Scoreboard XML
/////////////////////////////////////////////////////////////////////////

type scoreboardXML struct {
	XMLName xml.Name `xml:"fantasy_content"`
	League  struct {
		Scoreboard struct {
			Matchups []matchupXML `xml:"matchups>matchup"`
		} `xml:"scoreboard"`
	} `xml:"league"`
}

type matchupXML struct {
	Status        string    `xml:"status"`
	WinnerTeamKey string    `xml:"winner_team_key"`
	Teams         []teamXML `xml:"teams>team"`
}

type teamXML struct {
	TeamKey string `xml:"team_key"`
	TeamID  string `xml:"team_id"`
	Name    string `xml:"name"`
	Points  struct {
		Total float64 `xml:"total"`
	} `xml:"team_points"`
}

// FetchWeekMatchups returns the mirrored matchup pairs for a completed week.
// A week whose fixtures are not all finished yields an empty slice, never
// partial data. Completed weeks are served from the sqlite cache when
// available.
func (ds *YahooDataSource) FetchWeekMatchups(leagueKey string, week int) ([]*WeeklyMatchup, error) {
	cached, err := CachedWeekMatchups(leagueKey, week)
	if err != nil {
		logger.Warn("Matchup cache lookup failed", err)
	} else if len(cached) > 0 {
		logger.Debug("Serving week from cache", week)
		return cached, nil
	}

	token, err := ds.getAccessToken()
	if err != nil {
		return nil, err
	}

	apiUrl := fmt.Sprintf("%s/league/%s/scoreboard;week=%d", Config.YahooApiBaseUrl, leagueKey, week)
	body, err := transport.GetWithBearer(apiUrl, token)
	if err != nil {
		return nil, fmt.Errorf("scoreboard fetch failed for week %d: %w", week, err)
	}

	matchups, err := ParseScoreboard(body, leagueKey, week)
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

// ParseScoreboard converts a scoreboard XML document into mirrored
// WeeklyMatchup pairs. If any fixture in the week is not definitively
// finished (status postevent with a winner recorded), the whole week is
// treated as incomplete and an empty slice is returned.
func ParseScoreboard(data []byte, leagueKey string, week int) ([]*WeeklyMatchup, error) {
	var sb scoreboardXML
	if err := xml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("failed to parse scoreboard XML: %w", err)
	}

	raw := sb.League.Scoreboard.Matchups
	if len(raw) == 0 {
		return nil, nil
	}

	for _, m := range raw {
		if m.Status != "postevent" || m.WinnerTeamKey == "" {
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
				TeamScore:     a.Points.Total,
				OpponentID:    b.TeamID,
				OpponentName:  b.Name,
				OpponentScore: b.Points.Total,
				Won:           a.Points.Total > b.Points.Total,
			},
			&WeeklyMatchup{
				LeagueKey:     leagueKey,
				Week:          week,
				TeamID:        b.TeamID,
				TeamName:      b.Name,
				TeamScore:     b.Points.Total,
				OpponentID:    a.TeamID,
				OpponentName:  a.Name,
				OpponentScore: a.Points.Total,
				Won:           b.Points.Total > a.Points.Total,
			},
		)
	}

	return matchups, nil
}

/////////////////////////////////////////////////////////////////////////
////// League standings
/////////////////////////////////////////////////////////////////////////

type standingsXML struct {
	XMLName xml.Name `xml:"fantasy_content"`
	League  struct {
		Standings struct {
			Teams []standingsTeamXML `xml:"teams>team"`
		} `xml:"standings"`
	} `xml:"league"`
}

type standingsTeamXML struct {
	TeamID   string `xml:"team_id"`
	Name     string `xml:"name"`
	Managers []struct {
		Nickname string `xml:"nickname"`
	} `xml:"managers>manager"`
	Standings struct {
		Rank    int `xml:"rank"`
		Outcome struct {
			Wins   int `xml:"wins"`
			Losses int `xml:"losses"`
		} `xml:"outcome_totals"`
		PointsFor float64 `xml:"points_for"`
	} `xml:"team_standings"`
}

// FetchLeagueTeams returns the league's teams with their current standings
func (ds *YahooDataSource) FetchLeagueTeams(leagueKey string) ([]*Team, error) {
	token, err := ds.getAccessToken()
	if err != nil {
		return nil, err
	}

	apiUrl := fmt.Sprintf("%s/league/%s/standings", Config.YahooApiBaseUrl, leagueKey)
	body, err := transport.GetWithBearer(apiUrl, token)
	if err != nil {
		return nil, fmt.Errorf("standings fetch failed: %w", err)
	}

	teams, err := ParseStandings(body, leagueKey)
	if err != nil {
		return nil, err
	}

	if len(teams) > 0 {
		if err := SaveTeams(teams); err != nil {
			logger.Warn("Failed to cache teams", err)
		}
	}

	return teams, nil
}

// ParseStandings converts a standings XML document into Team records
func ParseStandings(data []byte, leagueKey string) ([]*Team, error) {
	var st standingsXML
	if err := xml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse standings XML: %w", err)
	}

	var teams []*Team
	for _, t := range st.League.Standings.Teams {
		team := &Team{
			LeagueKey: leagueKey,
			ID:        t.TeamID,
			Name:      t.Name,
			Wins:      t.Standings.Outcome.Wins,
			Losses:    t.Standings.Outcome.Losses,
			PointsFor: t.Standings.PointsFor,
			Rank:      t.Standings.Rank,
		}
		if len(t.Managers) > 0 {
			team.Manager = t.Managers[0].Nickname
		}
		teams = append(teams, team)
	}

	return teams, nil
}
