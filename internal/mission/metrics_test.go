package mission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ecoaliados/pkg/models"
)

func TestProgressPercentage(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		target   float64
		expected int
	}{
		{"zero", 0, 10, 0},
		{"third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"half", 5, 10, 50},
		{"full", 10, 10, 100},
		{"over target clamps", 15, 10, 100},
		{"zero target is complete", 0, 0, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := models.Mission{CurrentCount: tc.current, TargetCount: tc.target}
			assert.Equal(t, tc.expected, ProgressPercentage(m))
		})
	}
}

func TestTodaySumUsesUTCDay(t *testing.T) {
	m := models.Mission{Reports: []models.ReportEvent{
		{Added: 2, Timestamp: time.Date(2026, 1, 5, 0, 30, 0, 0, time.UTC)},
		{Added: 3, Timestamp: time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)},
		{Added: 7, Timestamp: time.Date(2026, 1, 4, 23, 59, 0, 0, time.UTC)},
	}}

	ref := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 5.0, TodaySum(m, ref))

	// A local-time ref on the same UTC day counts the same events
	lima := time.FixedZone("-05", -5*3600)
	refLima := time.Date(2026, 1, 5, 10, 0, 0, 0, lima)
	assert.Equal(t, 5.0, TodaySum(m, refLima))
}

func reportOn(day time.Time) models.ReportEvent {
	return models.ReportEvent{Added: 1, Timestamp: day.Add(10 * time.Hour)}
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2026, 1, 10+offset, 0, 0, 0, 0, time.UTC)
	}

	t.Run("no reports", func(t *testing.T) {
		assert.Equal(t, 0, Streak(nil, now))
		assert.Equal(t, 0, Streak([]models.Mission{{}}, now))
	})

	t.Run("single report today", func(t *testing.T) {
		missions := []models.Mission{{Reports: []models.ReportEvent{reportOn(day(0))}}}
		assert.Equal(t, 1, Streak(missions, now))
	})

	t.Run("ends yesterday still counts", func(t *testing.T) {
		missions := []models.Mission{{Reports: []models.ReportEvent{
			reportOn(day(-1)), reportOn(day(-2)), reportOn(day(-3)),
		}}}
		assert.Equal(t, 3, Streak(missions, now))
	})

	t.Run("stale history is zero", func(t *testing.T) {
		missions := []models.Mission{{Reports: []models.ReportEvent{
			reportOn(day(-2)), reportOn(day(-3)),
		}}}
		assert.Equal(t, 0, Streak(missions, now))
	})

	t.Run("gap breaks the walk", func(t *testing.T) {
		missions := []models.Mission{{Reports: []models.ReportEvent{
			reportOn(day(0)), reportOn(day(-1)), reportOn(day(-3)), reportOn(day(-4)),
		}}}
		assert.Equal(t, 2, Streak(missions, now))
	})

	t.Run("days merge across missions", func(t *testing.T) {
		missions := []models.Mission{
			{Reports: []models.ReportEvent{reportOn(day(0))}},
			{Reports: []models.ReportEvent{reportOn(day(-1)), reportOn(day(0))}},
		}
		assert.Equal(t, 2, Streak(missions, now))
	})
}

func TestTotalKgFormatting(t *testing.T) {
	assert.Equal(t, "0.0", TotalKg(0))
	assert.Equal(t, "1.5", TotalKg(10))
	assert.Equal(t, "0.3", TotalKg(2))
	assert.Equal(t, "4.8", TotalKg(32))
}

func TestRewardCounts(t *testing.T) {
	missions := []models.Mission{
		{RewardUnlocked: true, Reward: &models.Reward{ID: "a", Claimed: true}},
		{RewardUnlocked: true, Reward: &models.Reward{ID: "b"}},
		{RewardUnlocked: true}, // unlocked but no reward attached
		{Reward: &models.Reward{ID: "c"}},
	}

	assert.Equal(t, 2, UnlockedRewards(missions))
	assert.Equal(t, 1, ClaimedRewards(missions))
}

func TestNextMilestone(t *testing.T) {
	assert.Equal(t, 7, NextMilestone(0))
	assert.Equal(t, 7, NextMilestone(6))
	assert.Equal(t, 14, NextMilestone(7))
	assert.Equal(t, 365, NextMilestone(200))
	assert.Equal(t, 365, NextMilestone(400))
}

func TestStats(t *testing.T) {
	now := time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
	profile := models.Profile{
		ID:        "u1",
		Name:      "Ana",
		CreatedAt: now.AddDate(0, 0, -30),
	}
	missions := []models.Mission{
		{
			CurrentCount: 10, TargetCount: 10, Completed: true,
			RewardUnlocked: true,
			Reward:         &models.Reward{ID: "rw", Claimed: true},
			Reports:        []models.ReportEvent{reportOn(now.Truncate(24 * time.Hour))},
		},
		{CurrentCount: 7, TargetCount: 20},
	}

	stats := Stats(missions, profile, now)
	assert.Equal(t, 17.0, stats.TotalItems)
	assert.Equal(t, "2.5", stats.TotalKg)
	assert.Equal(t, 1, stats.CompletedMissions)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.TotalRewards)
	assert.Equal(t, 1, stats.ClaimedRewards)
	assert.Equal(t, 30, stats.DaysSinceJoined)
}

func TestSeed(t *testing.T) {
	missions := Seed()
	assert.NotEmpty(t, missions)

	seen := map[string]bool{}
	for _, m := range missions {
		assert.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID])
		seen[m.ID] = true

		assert.True(t, m.Active)
		assert.False(t, m.Completed)
		assert.Equal(t, 0.0, m.CurrentCount)
		assert.Greater(t, m.TargetCount, 0.0)
	}
}
