package mission

import (
	"sort"
	"time"

	"ecoaliados/pkg/models"
)

// SortByPriority orders missions for display. The input is not mutated.
//
// Order, most important first:
//  1. non-completed before completed
//  2. among equals, active before inactive
//  3. among equals, started (CurrentCount > 0) before not started
//  4. two started missions: higher progress percentage first, then lower
//     metadata priority, then most recent activity
//  5. two not-started missions: lower metadata priority first, then most
//     recent update
func SortByPriority(missions []models.Mission) []models.Mission {
	sorted := make([]models.Mission, len(missions))
	copy(sorted, missions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return displayBefore(sorted[i], sorted[j])
	})
	return sorted
}

func displayBefore(a, b models.Mission) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	if a.Active != b.Active {
		return a.Active
	}

	aStarted := a.CurrentCount > 0
	bStarted := b.CurrentCount > 0
	if aStarted != bStarted {
		return aStarted
	}

	if aStarted {
		pa := ProgressPercentage(a)
		pb := ProgressPercentage(b)
		if pa != pb {
			return pa > pb
		}
		if a.Priority() != b.Priority() {
			return a.Priority() < b.Priority()
		}
		return lastActivity(a).After(lastActivity(b))
	}

	if a.Priority() != b.Priority() {
		return a.Priority() < b.Priority()
	}
	return lastUpdate(a).After(lastUpdate(b))
}

// lastActivity is the most recent of lastReportedAt, updatedAt, createdAt.
func lastActivity(m models.Mission) time.Time {
	if m.LastReportedAt != nil {
		return *m.LastReportedAt
	}
	return lastUpdate(m)
}

// lastUpdate is the most recent of updatedAt, createdAt.
func lastUpdate(m models.Mission) time.Time {
	if m.UpdatedAt != nil {
		return *m.UpdatedAt
	}
	return m.CreatedAt
}
