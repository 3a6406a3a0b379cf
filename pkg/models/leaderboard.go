package models

// LeaderboardEntry is one row of the comparison list combining the real
// user with synthetic peers. TotalKg is the one-decimal string form; rows
// are ranked by its numeric value.
type LeaderboardEntry struct {
	Profile           Profile `json:"profile"`
	TotalKg           string  `json:"totalKg"`
	CompletedMissions int     `json:"completedMissions"`
	CurrentStreak     int     `json:"currentStreak"`
	IsCurrentUser     bool    `json:"isCurrentUser"`
}
