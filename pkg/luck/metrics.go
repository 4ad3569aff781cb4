package luck

// LuckMetrics is a team's season-level luck summary. Computed once per
// analysis run and never mutated afterwards.
type LuckMetrics struct {
	TeamID           string         `json:"teamId"`
	TeamName         string         `json:"teamName"`
	TotalLuckScore   float64        `json:"totalLuckScore"`
	AvgLuckPerWeek   float64        `json:"avgLuckPerWeek"`
	LuckiestWeek     *WeeklyMatchup `json:"luckiestWeek,omitempty"`
	UnluckiestWeek   *WeeklyMatchup `json:"unluckiestWeek,omitempty"`
	WeeksPlayed      int            `json:"weeksPlayed"`
	ActualWins       int            `json:"actualWins"`
	ActualLosses     int            `json:"actualLosses"`
	ShouldHaveWins   int            `json:"shouldHaveWins"`
	ShouldHaveLosses int            `json:"shouldHaveLosses"`
	LuckDifferential int            `json:"luckDifferential"`
	Trends           *ScoringTrends `json:"trends,omitempty"`
}

// ScoringTrends is a team's momentum and consistency summary, derived from
// its ordered weekly score sequence.
type ScoringTrends struct {
	TeamID          string    `json:"teamId"`
	TeamName        string    `json:"teamName"`
	WeeklyScores    []float64 `json:"weeklyScores"`
	AvgScore        float64   `json:"avgScore"`
	ScoreStd        float64   `json:"scoreStd"`
	TrendSlope      float64   `json:"trendSlope"`
	RecentAvg       float64   `json:"recentAvg"`
	PeakWeek        int       `json:"peakWeek"`
	ValleyWeek      int       `json:"valleyWeek"`
	HotStreak       int       `json:"hotStreak"`
	ColdStreak      int       `json:"coldStreak"`
	VolatilityIndex float64   `json:"volatilityIndex"`
}

// MatchupHighlight pairs a matchup with its computed luck score,
// used in per-week breakdowns
type MatchupHighlight struct {
	TeamName  string         `json:"teamName"`
	Matchup   *WeeklyMatchup `json:"matchup"`
	LuckScore float64        `json:"luckScore"`
}

// WeekBreakdown captures the extremes of a single completed week
type WeekBreakdown struct {
	Week       int                `json:"week"`
	Luckiest   *MatchupHighlight  `json:"luckiest,omitempty"`
	Unluckiest *MatchupHighlight  `json:"unluckiest,omitempty"`
	LuckScores map[string]float64 `json:"luckScores"`
}
