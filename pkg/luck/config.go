package luck

import (
	"fmt"
	"os"
	"path/filepath"
)

// LuckConfig contains all configurable parameters that influence luck scoring
// This centralizes all magic numbers and constants for easy adjustment
type LuckConfig struct {
	// Database and cache parameters
	AssetsPath string // The base directory of assets relating to luck analysis
	CachePath  string // The location in which fetched league data is cached
	DbPath     string // The location of the sqlite database

	// === LEAGUE DEFAULTS ===
	LeagueKey string // Yahoo league key, eg "461.l.12345"
	MaxWeek   int    // Highest week number to scan for completed matchups

	// === CORE LUCK PARAMETERS ===

	// Scale applied to (actual_result - expected_win_pct)
	BaseLuckScale float64 // default: 100.0

	// Scale applied to (opponent_percentile - 0.5)
	OpponentStrengthScale float64 // default: 20.0

	// Fallback win expectation when a week has no other teams to compare against
	NeutralProbability float64 // default: 0.5

	// === TREND PARAMETERS ===

	RecentFormWindow int // Number of most recent weeks in the recent average (default: 3)

	// === YAHOO API ===

	YahooApiBaseUrl  string // Fantasy sports API root
	YahooTokenUrl    string // OAuth token exchange endpoint
	PublicLeagueUrl  string // Public scoreboard page pattern, %s = league id, %d = week
	ReportOutputPath string // Directory markdown reports and charts are written to
}

// DefaultLuckConfig returns the default configuration with all standard values
func DefaultLuckConfig() *LuckConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/tmp"
	}
	assetsPath := filepath.Join(home, ".ggg-luck")

	return &LuckConfig{
		AssetsPath: assetsPath,
		CachePath:  filepath.Join(assetsPath, "cache"),
		DbPath:     filepath.Join(assetsPath, "luck.db"),

		LeagueKey: os.Getenv("YAHOO_LEAGUE_KEY"),
		MaxWeek:   17,

		BaseLuckScale:         100.0,
		OpponentStrengthScale: 20.0,
		NeutralProbability:    0.5,

		RecentFormWindow: 3,

		YahooApiBaseUrl:  "https://fantasysports.yahooapis.com/fantasy/v2",
		YahooTokenUrl:    "https://api.login.yahoo.com/oauth2/get_token",
		PublicLeagueUrl:  "https://football.fantasysports.yahoo.com/f1/%s/matchup?week=%d",
		ReportOutputPath: filepath.Join(assetsPath, "reports"),
	}
}

// Global configuration instance
var Config *LuckConfig

// init initializes the global configuration with default values
func init() {
	Config = DefaultLuckConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *LuckConfig) {
	Config = newConfig
}

// ValidateConfig ensures all configuration values are within reasonable ranges
func ValidateConfig(config *LuckConfig) error {
	if config.MaxWeek < 1 {
		return fmt.Errorf("MaxWeek must be at least 1, got: %d", config.MaxWeek)
	}

	if config.BaseLuckScale <= 0 {
		return fmt.Errorf("BaseLuckScale must be positive, got: %f", config.BaseLuckScale)
	}

	if config.OpponentStrengthScale < 0 {
		return fmt.Errorf("OpponentStrengthScale must not be negative, got: %f", config.OpponentStrengthScale)
	}

	if config.NeutralProbability < 0.0 || config.NeutralProbability > 1.0 {
		return fmt.Errorf("NeutralProbability must be between 0.0 and 1.0, got: %f", config.NeutralProbability)
	}

	if config.RecentFormWindow < 1 {
		return fmt.Errorf("RecentFormWindow must be at least 1, got: %d", config.RecentFormWindow)
	}

	return nil
}

// === HELPER FUNCTIONS FOR EASY ACCESS ===

// GetNeutralProbability returns the fallback probability for degenerate weeks
func GetNeutralProbability() float64 {
	return Config.NeutralProbability
}

// GetRecentFormWindow returns the number of weeks in the recent-form average
func GetRecentFormWindow() int {
	return Config.RecentFormWindow
}

// GetLeagueKey returns the configured league key
func GetLeagueKey() string {
	return Config.LeagueKey
}

// SetLeagueKey updates the configured league key
func SetLeagueKey(key string) {
	Config.LeagueKey = key
}
