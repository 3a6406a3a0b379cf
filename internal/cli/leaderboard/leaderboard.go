package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecoaliados/internal/cli/local"
	lboard "ecoaliados/internal/leaderboard"
	"ecoaliados/internal/mission"
)

var LeaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the community leaderboard",
	Long:  "Rank yourself against generated eco-peers by total recycled kilograms. Peers are synthesized fresh on every run",
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

		stats := mission.Stats(missions, profile, time.Now())
		gen := lboard.New(nil, lboard.WithVariance(viper.GetFloat64("leaderboard.variance")))
		entries := gen.Generate(profile, stats)

		fmt.Println("🏆 Leaderboard — total kg recycled")
		fmt.Println("")
		for i, e := range entries {
			marker := "  "
			if e.IsCurrentUser {
				marker = "→ "
			}
			fmt.Printf("%s%2d. %s %-14s %7s kg   %d missions   %d day streak\n",
				marker, i+1, e.Profile.Avatar, e.Profile.Name, e.TotalKg,
				e.CompletedMissions, e.CurrentStreak)
		}
		fmt.Println("")
		if pos := lboard.UserPosition(entries); pos > 0 {
			fmt.Printf("You are #%d of %d\n", pos, len(entries))
		} else {
			fmt.Println("You are outside the top 10 — keep recycling!")
		}
		return nil
	},
}
