package mission

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoaliados/pkg/models"
)

func testMission() models.Mission {
	return models.Mission{
		ID:           "mission-1",
		Type:         models.MissionTypeCount,
		Title:        "Recycle PET bottles",
		TargetCount:  10,
		CurrentCount: 0,
		Active:       true,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyReportInvalidAmount(t *testing.T) {
	m := testMission()
	ref := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	for _, amount := range []float64{0, -1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		result := ApplyReport(m, amount, "", ref)
		assert.False(t, result.Success)
		assert.Equal(t, models.ErrCodeInvalidAmount, result.Code)
		assert.Nil(t, result.Mission)
	}
}

func TestApplyReportInactiveMission(t *testing.T) {
	m := testMission()
	m.Active = false

	result := ApplyReport(m, 3, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	assert.False(t, result.Success)
	assert.Equal(t, models.ErrCodeMissionInactive, result.Code)
}

func TestApplyReportValidationOrder(t *testing.T) {
	// An invalid amount wins over an inactive mission
	m := testMission()
	m.Active = false

	result := ApplyReport(m, -5, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, models.ErrCodeInvalidAmount, result.Code)
}

func TestApplyReportSuccess(t *testing.T) {
	m := testMission()
	ref := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	result := ApplyReport(m, 3, "after lunch", ref)
	require.True(t, result.Success)
	require.NotNil(t, result.Mission)

	updated := *result.Mission
	assert.Equal(t, 3.0, updated.CurrentCount)
	assert.Equal(t, 3.0, result.Added)
	assert.Equal(t, 3.0, result.NewCount)
	assert.False(t, result.Completed)
	assert.True(t, updated.Active)
	assert.Equal(t, "Report added.", result.Message)

	require.Len(t, updated.Reports, 1)
	assert.Equal(t, 3.0, updated.Reports[0].Added)
	assert.Equal(t, "after lunch", updated.Reports[0].Note)
	assert.Equal(t, ref, updated.Reports[0].Timestamp)
	assert.NotEmpty(t, updated.Reports[0].ID)

	require.NotNil(t, updated.LastReportedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, ref, *updated.LastReportedAt)
	assert.Equal(t, ref, *updated.UpdatedAt)
}

func TestApplyReportDoesNotMutateInput(t *testing.T) {
	m := testMission()
	m.CurrentCount = 2
	m.Reports = []models.ReportEvent{
		{ID: "r1", Added: 2, Timestamp: time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC)},
	}

	result := ApplyReport(m, 3, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	require.True(t, result.Success)

	assert.Equal(t, 2.0, m.CurrentCount)
	assert.Len(t, m.Reports, 1)
	assert.Nil(t, m.UpdatedAt)
	assert.Nil(t, m.LastReportedAt)
}

func TestApplyReportCompletion(t *testing.T) {
	m := testMission()
	m.CurrentCount = 8
	m.Reward = &models.Reward{ID: "rw1", Type: models.RewardTypeBadge, Title: "Eco Starter"}

	result := ApplyReport(m, 2, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	require.True(t, result.Success)
	assert.True(t, result.Completed)
	assert.Equal(t, "Report added. Mission completed!", result.Message)

	updated := *result.Mission
	assert.True(t, updated.Completed)
	assert.False(t, updated.Active)
	assert.True(t, updated.RewardUnlocked)
	assert.Equal(t, 10.0, updated.CurrentCount)
}

func TestApplyReportOvershootDiscarded(t *testing.T) {
	m := testMission()
	m.CurrentCount = 8

	result := ApplyReport(m, 50, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	require.True(t, result.Success)

	// Count clamps at the target; the event still records the raw amount
	assert.Equal(t, 10.0, result.NewCount)
	assert.Equal(t, 10.0, result.Mission.CurrentCount)
	assert.Equal(t, 50.0, result.Mission.Reports[0].Added)
}

func TestApplyReportRewardUnlockedSticky(t *testing.T) {
	m := testMission()
	m.RewardUnlocked = true
	m.CurrentCount = 1

	result := ApplyReport(m, 1, "", time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC))
	require.True(t, result.Success)
	assert.False(t, result.Completed)
	assert.True(t, result.Mission.RewardUnlocked)
}

func TestApplyReportDailyLimit(t *testing.T) {
	limit := 5.0
	m := testMission()
	m.Metadata = &models.MissionMetadata{DailyLimit: &limit}

	day := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	m.Reports = []models.ReportEvent{
		{ID: "r1", Added: 3, Timestamp: day.Add(9 * time.Hour)},
		{ID: "r2", Added: 1, Timestamp: day.AddDate(0, 0, -1)}, // yesterday, ignored
	}
	m.CurrentCount = 4

	// 3 today + 2 = 5, exactly at the limit
	result := ApplyReport(m, 2, "", day.Add(15*time.Hour))
	require.True(t, result.Success)
	assert.Equal(t, 6.0, result.NewCount)

	// 3 today + 3 = 6, over the limit
	result = ApplyReport(m, 3, "", day.Add(15*time.Hour))
	require.False(t, result.Success)
	assert.Equal(t, models.ErrCodeDailyLimitExceeded, result.Code)
	assert.Equal(t, "Daily limit exceeded. Already reported 3 today (limit 5).", result.Message)
}

func TestApplyReportDailyLimitResetsNextDay(t *testing.T) {
	limit := 5.0
	m := testMission()
	m.Metadata = &models.MissionMetadata{DailyLimit: &limit}
	m.Reports = []models.ReportEvent{
		{ID: "r1", Added: 5, Timestamp: time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)},
	}
	m.CurrentCount = 5

	result := ApplyReport(m, 5, "", time.Date(2026, 1, 6, 1, 0, 0, 0, time.UTC))
	require.True(t, result.Success)
	assert.Equal(t, 10.0, result.NewCount)
}

func TestApplyReportRejectionLeavesMissionReusable(t *testing.T) {
	m := testMission()
	ref := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	first := ApplyReport(m, -1, "", ref)
	second := ApplyReport(m, -1, "", ref)
	assert.Equal(t, first, second)

	// The same mission value still accepts a valid report afterwards
	result := ApplyReport(m, 2, "", ref)
	assert.True(t, result.Success)
}

func TestCapReports(t *testing.T) {
	m := testMission()
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	reports := make([]models.ReportEvent, models.MaxReportEventsPerMission)
	for i := range reports {
		reports[i] = models.ReportEvent{
			ID:        "r" + string(rune('a'+i%26)),
			Added:     1,
			Timestamp: day.Add(time.Duration(i) * time.Minute),
		}
	}
	m.Reports = reports

	result := ApplyReport(m, 1, "", day.Add(200*time.Minute))
	require.True(t, result.Success)

	updated := *result.Mission
	assert.Len(t, updated.Reports, models.MaxReportEventsPerMission)
	// Oldest event evicted, newest appended
	assert.Equal(t, reports[1].Timestamp, updated.Reports[0].Timestamp)
	assert.Equal(t, day.Add(200*time.Minute), updated.Reports[len(updated.Reports)-1].Timestamp)
	// Input history untouched
	assert.Len(t, m.Reports, models.MaxReportEventsPerMission)
}
