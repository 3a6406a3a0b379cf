package leaderboard

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoaliados/pkg/models"
)

func testProfile() models.Profile {
	return models.Profile{
		ID:        "user-1",
		Name:      "Ana",
		Avatar:    "🌿",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testStats() models.ProfileStats {
	return models.ProfileStats{
		TotalKg:           "12.5",
		CompletedMissions: 4,
		CurrentStreak:     6,
	}
}

func newTestGenerator(seed int64, opts ...Option) *Generator {
	opts = append(opts, WithClock(func() time.Time {
		return time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	}))
	return New(rand.New(rand.NewSource(seed)), opts...)
}

func TestGenerateShape(t *testing.T) {
	g := newTestGenerator(1)
	entries := g.Generate(testProfile(), testStats())

	// 7-10 peers plus the user, capped at 10 entries
	assert.GreaterOrEqual(t, len(entries), 8)
	assert.LessOrEqual(t, len(entries), 10)

	users := 0
	for _, e := range entries {
		if e.IsCurrentUser {
			users++
			assert.Equal(t, "user-1", e.Profile.ID)
			assert.Equal(t, "12.5", e.TotalKg)
		} else {
			assert.NotEmpty(t, e.Profile.Name)
			assert.NotEmpty(t, e.Profile.Avatar)
		}
	}
	assert.LessOrEqual(t, users, 1)
}

func TestGenerateSortedByKgDescending(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newTestGenerator(seed)
		entries := g.Generate(testProfile(), testStats())

		for i := 1; i < len(entries); i++ {
			prev, _ := strconv.ParseFloat(entries[i-1].TotalKg, 64)
			cur, _ := strconv.ParseFloat(entries[i].TotalKg, 64)
			assert.GreaterOrEqual(t, prev, cur, "seed %d position %d", seed, i)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := newTestGenerator(42).Generate(testProfile(), testStats())
	b := newTestGenerator(42).Generate(testProfile(), testStats())
	assert.Equal(t, a, b)
}

func TestGeneratePeerStatsWithinVariance(t *testing.T) {
	g := newTestGenerator(7)
	entries := g.Generate(testProfile(), testStats())

	for _, e := range entries {
		if e.IsCurrentUser {
			continue
		}
		kg, err := strconv.ParseFloat(e.TotalKg, 64)
		require.NoError(t, err)
		// userKg 12.5, default variance 0.5: peers land in [6.25, 18.75]
		// modulo the 0.1 floor and one-decimal rounding
		assert.GreaterOrEqual(t, kg, 6.2)
		assert.LessOrEqual(t, kg, 18.8)
		assert.GreaterOrEqual(t, e.CompletedMissions, 0)
		assert.GreaterOrEqual(t, e.CurrentStreak, 0)
	}
}

func TestGenerateZeroVariance(t *testing.T) {
	g := newTestGenerator(3, WithVariance(0))
	entries := g.Generate(testProfile(), testStats())

	for _, e := range entries {
		assert.Equal(t, "12.5", e.TotalKg)
		assert.Equal(t, 4, e.CompletedMissions)
		assert.Equal(t, 6, e.CurrentStreak)
	}
}

func TestGenerateUnparsableUserKg(t *testing.T) {
	stats := testStats()
	stats.TotalKg = "not-a-number"

	g := newTestGenerator(5)
	entries := g.Generate(testProfile(), stats)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		if e.IsCurrentUser {
			continue
		}
		// Peers bottom out at the 0.1 floor
		kg, err := strconv.ParseFloat(e.TotalKg, 64)
		require.NoError(t, err)
		assert.InDelta(t, 0.1, kg, 0.001)
	}
}

func TestGeneratePeerJoinDatesInPastYear(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	g := newTestGenerator(11)
	entries := g.Generate(testProfile(), testStats())

	for _, e := range entries {
		if e.IsCurrentUser {
			continue
		}
		assert.False(t, e.Profile.CreatedAt.After(now))
		assert.False(t, e.Profile.CreatedAt.Before(now.AddDate(-1, 0, -1)))
	}
}

func TestUserPosition(t *testing.T) {
	entries := []models.LeaderboardEntry{
		{TotalKg: "9.0"},
		{TotalKg: "7.5", IsCurrentUser: true},
		{TotalKg: "3.0"},
	}
	assert.Equal(t, 2, UserPosition(entries))
	assert.Equal(t, 0, UserPosition(entries[:1]))
	assert.Equal(t, 0, UserPosition(nil))
}
