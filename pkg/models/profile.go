package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile identifies the local user.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultProfile returns the profile used until the user edits theirs.
func DefaultProfile() Profile {
	return Profile{
		ID:        uuid.New().String(),
		Name:      "EcoAliado",
		Avatar:    "🌿",
		CreatedAt: time.Now().UTC(),
	}
}

// ProfileStats aggregates the derived statistics shown on the profile and
// home screens. TotalKg keeps the one-decimal string form used everywhere
// the value is displayed or compared.
type ProfileStats struct {
	TotalItems        float64 `json:"totalItems"`
	TotalKg           string  `json:"totalKg"`
	CompletedMissions int     `json:"completedMissions"`
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
	TotalRewards      int     `json:"totalRewards"`
	ClaimedRewards    int     `json:"claimedRewards"`
	DaysSinceJoined   int     `json:"daysSinceJoined"`
}
