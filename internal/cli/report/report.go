package report

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
	"ecoaliados/internal/mission"
	"ecoaliados/pkg/logger"
)

var ReportCmd = &cobra.Command{
	Use:   "report <mission-id>",
	Short: "Report recycled items against a mission",
	Long:  "Apply a recycling report to a mission: validates the amount, the mission state and any daily limit, then persists the updated collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetFloat64("count")
		note, _ := cmd.Flags().GetString("note")

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

		result, updated := mission.ReportToCollection(missions, args[0], count, note, time.Now())
		if !result.Success {
			return fmt.Errorf("%s", result.Message)
		}

		// Persistence is fire-and-forget: a failed save must not look like
		// a failed report.
		if err := store.SaveMissions(ctx, updated); err != nil {
			logger.Warnf("failed to persist missions: %v", err)
		}

		m := result.Mission
		fmt.Printf("✓ %s\n", result.Message)
		fmt.Printf("  +%g %s\n", result.Added, m.Unit())
		fmt.Printf("  Progress: %g/%g (%d%%)\n", result.NewCount, m.TargetCount, mission.ProgressPercentage(*m))
		if result.Completed {
			fmt.Println("  🎉 Congratulations on completing the mission!")
			if m.Reward != nil {
				fmt.Printf("  Reward unlocked: %s\n", m.Reward.Title)
			}
		}
		return nil
	},
}

func init() {
	ReportCmd.Flags().Float64("count", 1, "amount of items to report")
	ReportCmd.Flags().String("note", "", "optional note for the report")
}
