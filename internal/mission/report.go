// Package mission - Mission Progress Engine
// Pure, synchronous state-transition logic for recycling reports.
// Functions here never do I/O and never mutate their inputs; callers receive
// fresh mission values and are responsible for persisting them.
package mission

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"ecoaliados/pkg/models"
)

// ApplyReport validates a recycling report against a mission and applies it.
//
// Validation short-circuits on the first failing check; the mission is
// unchanged on any failure. ref is the reference time for the report: it
// stamps the event and selects the calendar day for the daily limit. A zero
// ref means "now".
func ApplyReport(m models.Mission, added float64, note string, ref time.Time) models.ReportResult {
	if math.IsNaN(added) || math.IsInf(added, 0) || added <= 0 {
		return models.Failure(models.ErrCodeInvalidAmount,
			"Amount must be a number greater than 0.")
	}

	if !m.Active {
		return models.Failure(models.ErrCodeMissionInactive,
			"Mission is not active.")
	}

	if ref.IsZero() {
		ref = time.Now()
	}

	if limit, ok := m.DailyLimit(); ok && !math.IsNaN(limit) && !math.IsInf(limit, 0) {
		todaySum := TodaySum(m, ref)
		if todaySum+added > limit {
			return models.Failure(models.ErrCodeDailyLimitExceeded,
				fmt.Sprintf("Daily limit exceeded. Already reported %s today (limit %s).",
					formatAmount(todaySum), formatAmount(limit)))
		}
	}

	updated := m.Clone()

	event := models.ReportEvent{
		ID:        uuid.New().String(),
		Added:     added,
		Timestamp: ref,
		Note:      note,
	}
	updated.Reports = capReports(append(updated.Reports, event))

	// Excess above the target is silently discarded.
	newCount := math.Min(updated.TargetCount, updated.CurrentCount+added)
	completed := newCount >= updated.TargetCount

	updated.CurrentCount = newCount
	updated.Completed = completed
	if completed {
		// One-way transition: a completed mission never reactivates here.
		updated.Active = false
	}
	updated.RewardUnlocked = completed || m.RewardUnlocked

	reportedAt := ref
	updatedAt := ref
	updated.LastReportedAt = &reportedAt
	updated.UpdatedAt = &updatedAt

	message := "Report added."
	if completed {
		message = "Report added. Mission completed!"
	}

	return models.ReportResult{
		Success:   true,
		Message:   message,
		Added:     added,
		NewCount:  newCount,
		Completed: completed,
		Mission:   &updated,
	}
}

// capReports keeps only the most recent MaxReportEventsPerMission events.
// Reports are ordered oldest first, so eviction drops from the front.
func capReports(reports []models.ReportEvent) []models.ReportEvent {
	if len(reports) <= models.MaxReportEventsPerMission {
		return reports
	}
	capped := make([]models.ReportEvent, models.MaxReportEventsPerMission)
	copy(capped, reports[len(reports)-models.MaxReportEventsPerMission:])
	return capped
}

// formatAmount renders counts without trailing zeros ("3", "2.5").
func formatAmount(v float64) string {
	return fmt.Sprintf("%g", v)
}
