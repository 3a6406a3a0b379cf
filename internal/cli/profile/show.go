package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
	"ecoaliados/internal/mission"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := local.OpenStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		profile, err := store.LoadProfile(ctx)
		if err != nil {
			return err
		}
		missions, err := store.LoadMissions(ctx)
		if err != nil {
			return err
		}

		stats := mission.Stats(missions, profile, time.Now())

		fmt.Printf("%s %s\n", profile.Avatar, profile.Name)
		fmt.Printf("  id: %s\n", profile.ID)
		fmt.Printf("  joined: %s (%d days ago)\n",
			profile.CreatedAt.Format("2006-01-02"), stats.DaysSinceJoined)
		fmt.Printf("  recycled: %s kg · %d missions completed · %d day streak\n",
			stats.TotalKg, stats.CompletedMissions, stats.CurrentStreak)
		return nil
	},
}

func init() {
	ProfileCmd.AddCommand(showCmd)
}
