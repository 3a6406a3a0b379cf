package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	utc := time.Date(2026, 1, 5, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-05", DayKey(utc))

	// Local zones convert to UTC before bucketing
	lima := time.FixedZone("-05", -5*3600)
	late := time.Date(2026, 1, 5, 20, 0, 0, 0, lima) // 01:00 UTC next day
	assert.Equal(t, "2026-01-06", DayKey(late))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 1, 5, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(now, now))
	assert.Equal(t, 1, DaysSince(now.Add(-time.Hour), now))
	assert.Equal(t, 1, DaysSince(now.Add(-24*time.Hour), now))
	assert.Equal(t, 2, DaysSince(now.Add(-25*time.Hour), now))
	assert.Equal(t, 30, DaysSince(now.AddDate(0, 0, -30), now))
}

func TestGenerateIDFormat(t *testing.T) {
	id := GenerateMissionID()
	assert.Regexp(t, `^mission-\d+-\d{3,}$`, id)

	other := GenerateRewardID()
	assert.Regexp(t, `^reward-\d+-\d{3,}$`, other)
	assert.NotEqual(t, id, other)
}

func TestGenerateIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateID("test")
		assert.False(t, seen[id])
		seen[id] = true
	}
}
