package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
	"ecoaliados/internal/mission"
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your recycling statistics",
	Long:  "Display the derived statistics: streak, lifetime totals, rewards and progress toward the next streak milestone",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := local.OpenStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		missions, err := store.LoadMissions(ctx)
		if err != nil {
			return err
		}
		profile, err := store.LoadProfile(ctx)
		if err != nil {
			return err
		}

		now := time.Now()
		s := mission.Stats(missions, profile, now)

		fmt.Printf("%s %s\n", profile.Avatar, profile.Name)
		fmt.Println("")
		fmt.Printf("🔥 Streak: %d day(s)\n", s.CurrentStreak)
		fmt.Printf("   Next milestone: %d days (%d%%)\n",
			mission.NextMilestone(s.CurrentStreak), mission.MilestoneProgress(s.CurrentStreak))
		fmt.Println("")
		fmt.Printf("♻️  Today: %s kg\n", mission.TodayKg(missions, now))
		fmt.Printf("   Lifetime: %g items (%s kg)\n", s.TotalItems, s.TotalKg)
		fmt.Println("")
		fmt.Printf("🏆 Missions completed: %d\n", s.CompletedMissions)
		fmt.Printf("🎁 Rewards unlocked: %d (claimed %d)\n", s.TotalRewards, s.ClaimedRewards)
		fmt.Printf("📅 Member for %d day(s)\n", s.DaysSinceJoined)
		return nil
	},
}
