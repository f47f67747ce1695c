package models

// GameStatRecord is one player's stat line for a single game or one
// season-aggregate row, reduced to the same shape regardless of which
// source produced it. Player names are carried as scraped; identity
// resolution happens downstream.
//
// Numeric stats are pointers so that a stat a source did not report stays
// distinguishable from a genuine zero. FantasyPoints is always derived,
// never read from a source.
type GameStatRecord struct {
	PlayerName string `json:"player_name"`
	Season     string `json:"season"`
	Team       string `json:"team,omitempty"`
	Opponent   string `json:"opponent,omitempty"`
	IsHome     *bool  `json:"is_home,omitempty"`
	GameDate   string `json:"game_date,omitempty"`

	Points              *float64 `json:"points,omitempty"`
	Rebounds            *float64 `json:"rebounds,omitempty"`
	Assists             *float64 `json:"assists,omitempty"`
	Steals              *float64 `json:"steals,omitempty"`
	Blocks              *float64 `json:"blocks,omitempty"`
	Turnovers           *float64 `json:"turnovers,omitempty"`
	ThreePointersMade   *float64 `json:"three_pointers_made,omitempty"`
	Minutes             *float64 `json:"minutes,omitempty"`
	FieldGoalsMade      *float64 `json:"field_goals_made,omitempty"`
	FieldGoalsAttempted *float64 `json:"field_goals_attempted,omitempty"`
	FreeThrowsMade      *float64 `json:"free_throws_made,omitempty"`
	FreeThrowsAttempted *float64 `json:"free_throws_attempted,omitempty"`

	FantasyPoints float64 `json:"fantasy_points"`
}

// SalaryRecord is one player's slate entry for a single contest,
// normalized from a platform-specific salary export.
type SalaryRecord struct {
	Name          string   `json:"name"`
	Position      string   `json:"position"`
	Positions     []string `json:"positions"`
	Salary        int      `json:"salary"`
	AvgFpts       float64  `json:"avg_fpts"`
	Team          string   `json:"team"`
	Opponent      string   `json:"opponent,omitempty"`
	IsHome        bool     `json:"is_home"`
	InjuryStatus  string   `json:"injury_status,omitempty"`
	InjuryDetails string   `json:"injury_details,omitempty"`
}

// Float returns a pointer to v, for populating optional stat fields.
func Float(v float64) *float64 {
	return &v
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Value dereferences p, treating an absent stat as zero.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
