package luck

import (
	"fmt"
	"strings"
	"time"

	"github.com/will8807/ggg-luck/internal/logger"
)

// Team represents a league team with database persistence annotations
type Team struct {
	LeagueKey string    `json:"leagueKey" column:"league_key" dbtype:"TEXT NOT NULL" primary:"true"`
	ID        string    `json:"id" column:"id" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	Name      string    `json:"name" column:"name" dbtype:"TEXT NOT NULL" index:"true"`
	Manager   string    `json:"manager" column:"manager" dbtype:"TEXT"`
	Wins      int       `json:"wins" column:"wins" dbtype:"INTEGER DEFAULT 0"`
	Losses    int       `json:"losses" column:"losses" dbtype:"INTEGER DEFAULT 0"`
	PointsFor float64   `json:"pointsFor" column:"points_for" dbtype:"REAL DEFAULT 0"`
	Rank      int       `json:"rank" column:"rank" dbtype:"INTEGER DEFAULT 0"`
	CreatedAt time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

/////////////////////////////////////////////////////////////////////////
////// Persistable Interface Implementation
/////////////////////////////////////////////////////////////////////////

// GetPrimaryKey returns the primary key as a map
func (t *Team) GetPrimaryKey() map[string]interface{} {
	return map[string]interface{}{
		"league_key": t.LeagueKey,
		"id":         t.ID,
	}
}

// SetPrimaryKey sets the primary key from a map
func (t *Team) SetPrimaryKey(pk map[string]interface{}) error {
	lk, ok := pk["league_key"].(string)
	if !ok {
		return fmt.Errorf("primary key 'league_key' must be a string")
	}
	id, ok := pk["id"].(string)
	if !ok {
		return fmt.Errorf("primary key 'id' must be a string")
	}
	t.LeagueKey = lk
	t.ID = id
	return nil
}

// GetTableName returns the table name for teams
func (t *Team) GetTableName() string {
	return "teams"
}

// BeforeSave is called before saving the team
func (t *Team) BeforeSave() error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	return nil
}

// AfterSave is called after saving the team
func (t *Team) AfterSave() error {
	return nil
}

/////////////////////////////////////////////////////////////////////////
////// Team Collection Operations
/////////////////////////////////////////////////////////////////////////

// SaveTeams caches teams in the database
func SaveTeams(teams []*Team) error {
	logger.Info("Saving teams to database", len(teams))

	var persistables []Persistable
	for _, team := range teams {
		persistables = append(persistables, team)
	}

	if len(persistables) > 0 {
		if err := BulkSave(persistables); err != nil {
			return fmt.Errorf("failed to bulk save teams: %w", err)
		}
	}

	return nil
}

// FindTeam locates a team by id, exact name, or unique partial name match.
// Name matching is case insensitive. An ambiguous partial match is an error.
func FindTeam(teams []*Team, query string) (*Team, error) {
	if query == "" {
		return nil, fmt.Errorf("empty team query")
	}

	for _, t := range teams {
		if t.ID == query {
			return t, nil
		}
	}

	lower := strings.ToLower(query)
	for _, t := range teams {
		if strings.ToLower(t.Name) == lower {
			return t, nil
		}
	}

	var partial []*Team
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), lower) {
			partial = append(partial, t)
		}
	}

	switch len(partial) {
	case 0:
		return nil, fmt.Errorf("no team matching %q", query)
	case 1:
		return partial[0], nil
	default:
		var names []string
		for _, t := range partial {
			names = append(names, t.Name)
		}
		return nil, fmt.Errorf("ambiguous team query %q matches: %s", query, strings.Join(names, ", "))
	}
}
