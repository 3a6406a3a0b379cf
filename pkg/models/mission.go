// Package models - Mission and Reward Record Model
// Data shapes shared by the engine, storage and UI layers.
package models

import (
	"time"
)

// MaxReportEventsPerMission bounds the per-mission report history.
// Oldest events are evicted first when the cap is exceeded.
const MaxReportEventsPerMission = 100

// Mission types
const (
	MissionTypeCount = "count"
	MissionTypeVisit = "visit"
)

// Reward types
const (
	RewardTypeBadge    = "badge"
	RewardTypeDiscount = "discount"
	RewardTypeItem     = "item"
	RewardTypePoints   = "points"
)

// ReportEvent is an immutable record of one reporting action.
type ReportEvent struct {
	ID        string    `json:"id"`
	Added     float64   `json:"added"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Reward is an unlockable benefit embedded in a mission.
type Reward struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // badge, discount, item, points
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Value       float64 `json:"value,omitempty"`
	Claimed     bool    `json:"claimed,omitempty"`
}

// MissionMetadata holds the optional per-mission configuration.
// Fields are enumerated explicitly rather than kept in an open map.
type MissionMetadata struct {
	Icon       string   `json:"icon,omitempty"`
	Unit       string   `json:"unit,omitempty"` // e.g. "botellas", "chapitas"
	DailyLimit *float64 `json:"dailyLimit,omitempty"`
	Priority   *int     `json:"priority,omitempty"` // lower = higher priority
}

// DefaultPriority is used for ordering when metadata carries no priority.
const DefaultPriority = 999

// Mission represents one recycling goal with a numeric target.
//
// Invariants maintained by the engine:
//   - 0 <= CurrentCount <= TargetCount
//   - len(Reports) <= MaxReportEventsPerMission, oldest first
//   - Completed and RewardUnlocked are one-way transitions
//   - a mission completed through the engine never reactivates
type Mission struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TargetCount  float64 `json:"targetCount"`
	CurrentCount float64 `json:"currentCount"`

	Reports []ReportEvent `json:"reports,omitempty"`

	Active    bool `json:"active"`
	Completed bool `json:"completed"`

	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	LastReportedAt *time.Time `json:"lastReportedAt,omitempty"`

	Reward         *Reward `json:"reward,omitempty"`
	RewardUnlocked bool    `json:"rewardUnlocked,omitempty"`

	Metadata *MissionMetadata `json:"metadata,omitempty"`
}

// Priority returns the ordering key from metadata, or DefaultPriority.
func (m *Mission) Priority() int {
	if m.Metadata != nil && m.Metadata.Priority != nil {
		return *m.Metadata.Priority
	}
	return DefaultPriority
}

// DailyLimit returns the configured daily cap and whether one is set.
func (m *Mission) DailyLimit() (float64, bool) {
	if m.Metadata != nil && m.Metadata.DailyLimit != nil {
		return *m.Metadata.DailyLimit, true
	}
	return 0, false
}

// Unit returns the display unit for reported items, defaulting to "items".
func (m *Mission) Unit() string {
	if m.Metadata != nil && m.Metadata.Unit != "" {
		return m.Metadata.Unit
	}
	return "items"
}

// Clone returns a deep copy of the mission. The engine transforms copies so
// that callers holding the previous collection never observe mutation.
func (m Mission) Clone() Mission {
	out := m
	if m.Reports != nil {
		out.Reports = make([]ReportEvent, len(m.Reports))
		copy(out.Reports, m.Reports)
	}
	if m.Reward != nil {
		reward := *m.Reward
		out.Reward = &reward
	}
	if m.Metadata != nil {
		meta := *m.Metadata
		if m.Metadata.DailyLimit != nil {
			limit := *m.Metadata.DailyLimit
			meta.DailyLimit = &limit
		}
		if m.Metadata.Priority != nil {
			prio := *m.Metadata.Priority
			meta.Priority = &prio
		}
		out.Metadata = &meta
	}
	if m.UpdatedAt != nil {
		t := *m.UpdatedAt
		out.UpdatedAt = &t
	}
	if m.LastReportedAt != nil {
		t := *m.LastReportedAt
		out.LastReportedAt = &t
	}
	return out
}
