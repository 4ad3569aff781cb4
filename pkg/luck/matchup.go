package luck

import (
	"fmt"
	"sort"
	"time"

	"github.com/will8807/ggg-luck/internal/logger"
)

// WeeklyMatchup represents one team's result in one week of head-to-head play.
// Every fixture yields two mirrored records, one per side, with the won flags
// consistent with the score comparison (both false on an exact tie).
// Records are immutable once created; the league key exists only for caching.
type WeeklyMatchup struct {
	LeagueKey     string    `json:"leagueKey" column:"league_key" dbtype:"TEXT NOT NULL" primary:"true"`
	Week          int       `json:"week" column:"week" dbtype:"INTEGER NOT NULL" primary:"true" index:"true"`
	TeamID        string    `json:"teamId" column:"team_id" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	TeamName      string    `json:"teamName" column:"team_name" dbtype:"TEXT NOT NULL"`
	TeamScore     float64   `json:"teamScore" column:"team_score" dbtype:"REAL NOT NULL"`
	OpponentID    string    `json:"opponentId" column:"opponent_id" dbtype:"TEXT NOT NULL"`
	OpponentName  string    `json:"opponentName" column:"opponent_name" dbtype:"TEXT NOT NULL"`
	OpponentScore float64   `json:"opponentScore" column:"opponent_score" dbtype:"REAL NOT NULL"`
	Won           bool      `json:"won" column:"won" dbtype:"INTEGER NOT NULL"`
	CreatedAt     time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetPrimaryKey returns the primary key as a map
func (m *WeeklyMatchup) GetPrimaryKey() map[string]interface{} {
	return map[string]interface{}{
		"league_key": m.LeagueKey,
		"week":       m.Week,
		"team_id":    m.TeamID,
	}
}

// SetPrimaryKey sets the primary key from a map
func (m *WeeklyMatchup) SetPrimaryKey(pk map[string]interface{}) error {
	lk, ok := pk["league_key"].(string)
	if !ok {
		return fmt.Errorf("primary key 'league_key' must be a string")
	}
	week, ok := pk["week"].(int)
	if !ok {
		return fmt.Errorf("primary key 'week' must be an int")
	}
	tid, ok := pk["team_id"].(string)
	if !ok {
		return fmt.Errorf("primary key 'team_id' must be a string")
	}
	m.LeagueKey = lk
	m.Week = week
	m.TeamID = tid
	return nil
}

// GetTableName returns the table name for matchups
func (m *WeeklyMatchup) GetTableName() string {
	return "matchups"
}

// BeforeSave is called before saving the matchup
func (m *WeeklyMatchup) BeforeSave() error {
	if m.Week < 1 {
		return fmt.Errorf("matchup week must be positive, got %d", m.Week)
	}
	if m.TeamID == "" {
		return fmt.Errorf("matchup has no team id")
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	return nil
}

// AfterSave is called after saving the matchup
func (m *WeeklyMatchup) AfterSave() error {
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Matchup Collection Operations
/////////////////////////////////////////////////////////////////////////

// SaveWeekMatchups caches a completed week's matchups in the database
func SaveWeekMatchups(matchups []*WeeklyMatchup) error {
	var toSave []Persistable
	for _, m := range matchups {
		exists, err := Exists(m)
		if err != nil {
			logger.Warn("Failed to check if matchup exists", m.TeamID, err)
			continue
		}
		if !exists {
			toSave = append(toSave, m)
		}
	}

	if len(toSave) == 0 {
		return nil
	}

	if err := BulkSave(toSave); err != nil {
		return fmt.Errorf("failed to bulk save matchups: %w", err)
	}
	logger.Debug("Cached matchups", len(toSave))
	return nil
}

// CachedWeekMatchups loads a previously cached week from the database.
// Returns an empty slice if the week has never been cached.
func CachedWeekMatchups(leagueKey string, week int) ([]*WeeklyMatchup, error) {
	rows, err := FindWhere(&WeeklyMatchup{}, "league_key = ? AND week = ? ORDER BY team_id", leagueKey, week)
	if err != nil {
		return nil, err
	}

	var matchups []*WeeklyMatchup
	for _, row := range rows {
		if m, ok := row.(*WeeklyMatchup); ok {
			matchups = append(matchups, m)
		}
	}
	return matchups, nil
}

/////////////////////////////////////////////////////////////////////////
////// In-memory helpers
/////////////////////////////////////////////////////////////////////////

// FilterWeek returns the subset of matchups belonging to the given week,
// preserving input order
func FilterWeek(matchups []*WeeklyMatchup, week int) []*WeeklyMatchup {
	var out []*WeeklyMatchup
	for _, m := range matchups {
		if m.Week == week {
			out = append(out, m)
		}
	}
	return out
}

// TeamMatchups returns one team's matchups ordered by week
func TeamMatchups(matchups []*WeeklyMatchup, teamID string) []*WeeklyMatchup {
	var out []*WeeklyMatchup
	for _, m := range matchups {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Week < out[j].Week
	})
	return out
}

// Summary returns a one-line human readable description of the matchup
func (m *WeeklyMatchup) Summary() string {
	verb := "lost to"
	if m.Won {
		verb = "beat"
	} else if m.TeamScore == m.OpponentScore {
		verb = "tied"
	}
	return fmt.Sprintf("Week %d: %s (%.2f) %s %s (%.2f)",
		m.Week, m.TeamName, m.TeamScore, verb, m.OpponentName, m.OpponentScore)
}
