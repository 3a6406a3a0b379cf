package mission

import (
	"fmt"
	"math"
	"sort"
	"time"

	"ecoaliados/pkg/models"
	"ecoaliados/pkg/utils"
)

// KgPerItem converts recycled item counts to kilograms (~150g per item).
const KgPerItem = 0.15

// streakMilestones is the fixed ladder of streak goals shown on the home
// screen.
var streakMilestones = []int{7, 14, 30, 60, 90, 180, 365}

// ProgressPercentage returns the mission's progress rounded to 0..100.
// A zero target is treated as trivially complete.
func ProgressPercentage(m models.Mission) int {
	if m.TargetCount == 0 {
		return 100
	}
	pct := (m.CurrentCount / m.TargetCount) * 100
	pct = math.Min(100, math.Max(0, pct))
	return int(math.Round(pct))
}

// TodaySum returns the total amount reported on the same UTC calendar day
// as ref. A zero ref means "now".
func TodaySum(m models.Mission, ref time.Time) float64 {
	if ref.IsZero() {
		ref = time.Now()
	}
	day := utils.DayKey(ref)
	var sum float64
	for _, r := range m.Reports {
		if utils.DayKey(r.Timestamp) == day {
			sum += r.Added
		}
	}
	return sum
}

// Streak counts consecutive UTC calendar days with at least one report,
// ending today or yesterday relative to now. A gap of two or more days
// breaks the streak to zero.
func Streak(missions []models.Mission, now time.Time) int {
	if now.IsZero() {
		now = time.Now()
	}

	seen := make(map[string]struct{})
	for _, m := range missions {
		for _, r := range m.Reports {
			seen[utils.DayKey(r.Timestamp)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0
	}

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	today := utils.DayKey(now)
	yesterday := utils.DayKey(now.AddDate(0, 0, -1))
	if days[0] != today && days[0] != yesterday {
		return 0
	}

	streak := 1
	current, err := time.Parse("2006-01-02", days[0])
	if err != nil {
		return 0
	}
	for _, d := range days[1:] {
		previous := current.AddDate(0, 0, -1)
		if d != previous.Format("2006-01-02") {
			break
		}
		streak++
		current = previous
	}
	return streak
}

// TotalItems sums the lifetime recycled item count across all missions.
func TotalItems(missions []models.Mission) float64 {
	var sum float64
	for _, m := range missions {
		sum += m.CurrentCount
	}
	return sum
}

// TotalKg converts an item count to kilograms with one decimal place.
func TotalKg(totalItems float64) string {
	return fmt.Sprintf("%.1f", totalItems*KgPerItem)
}

// TodayKg returns the kilograms recycled today across all missions, with
// one decimal place.
func TodayKg(missions []models.Mission, ref time.Time) string {
	var sum float64
	for _, m := range missions {
		sum += TodaySum(m, ref)
	}
	return fmt.Sprintf("%.1f", sum*KgPerItem)
}

// CompletedCount counts completed missions.
func CompletedCount(missions []models.Mission) int {
	count := 0
	for _, m := range missions {
		if m.Completed {
			count++
		}
	}
	return count
}

// UnlockedRewards counts missions whose reward has been unlocked.
func UnlockedRewards(missions []models.Mission) int {
	count := 0
	for _, m := range missions {
		if m.RewardUnlocked && m.Reward != nil {
			count++
		}
	}
	return count
}

// ClaimedRewards counts rewards the user has claimed.
func ClaimedRewards(missions []models.Mission) int {
	count := 0
	for _, m := range missions {
		if m.Reward != nil && m.Reward.Claimed {
			count++
		}
	}
	return count
}

// NextMilestone returns the next streak milestone above the given streak,
// topping out at the last rung of the ladder.
func NextMilestone(streak int) int {
	for _, ms := range streakMilestones {
		if ms > streak {
			return ms
		}
	}
	return streakMilestones[len(streakMilestones)-1]
}

// MilestoneProgress returns the rounded percentage toward the next streak
// milestone.
func MilestoneProgress(streak int) int {
	next := NextMilestone(streak)
	return int(math.Round(float64(streak) / float64(next) * 100))
}

// Stats aggregates the derived statistics for the profile and home screens.
func Stats(missions []models.Mission, profile models.Profile, now time.Time) models.ProfileStats {
	if now.IsZero() {
		now = time.Now()
	}
	streak := Streak(missions, now)
	totalItems := TotalItems(missions)
	return models.ProfileStats{
		TotalItems:        totalItems,
		TotalKg:           TotalKg(totalItems),
		CompletedMissions: CompletedCount(missions),
		CurrentStreak:     streak,
		// Longest streak is not tracked separately yet; the report history
		// only covers the capped event window.
		LongestStreak:   streak,
		TotalRewards:    UnlockedRewards(missions),
		ClaimedRewards:  ClaimedRewards(missions),
		DaysSinceJoined: utils.DaysSince(profile.CreatedAt, now),
	}
}
