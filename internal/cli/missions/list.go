package missions

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
	"ecoaliados/internal/mission"
	"ecoaliados/pkg/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List missions by priority",
	Long:  "Display all missions in display order: active ones first, the closest to completion on top",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := local.OpenStore()
		if err != nil {
			return err
		}
		defer store.Close()

		missions, err := store.LoadMissions(context.Background())
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")

		fmt.Println("Missions:")
		fmt.Println("")
		for _, m := range mission.SortByPriority(missions) {
			if !all && m.Completed {
				continue
			}
			printMission(m)
		}
		if !all {
			fmt.Printf("(%d completed hidden, use --all to show)\n", mission.CompletedCount(missions))
		}
		return nil
	},
}

func printMission(m models.Mission) {
	status := "▸"
	switch {
	case m.Completed:
		status = "✓"
	case !m.Active:
		status = "⏸"
	}

	icon := ""
	if m.Metadata != nil && m.Metadata.Icon != "" {
		icon = m.Metadata.Icon + " "
	}

	pct := mission.ProgressPercentage(m)
	fmt.Printf("%s %s%s\n", status, icon, m.Title)
	fmt.Printf("    %s  %g/%g %s (%d%%)\n", renderBar(pct, 20), m.CurrentCount, m.TargetCount, m.Unit(), pct)
	if limit, ok := m.DailyLimit(); ok {
		fmt.Printf("    daily limit: %g %s\n", limit, m.Unit())
	}
	if m.Reward != nil {
		claimed := ""
		if m.Reward.Claimed {
			claimed = " (claimed)"
		} else if m.RewardUnlocked {
			claimed = " (unlocked!)"
		}
		fmt.Printf("    reward: %s%s\n", m.Reward.Title, claimed)
	}
	fmt.Printf("    id: %s\n", m.ID)
	fmt.Println("")
}

func renderBar(pct, width int) string {
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	listCmd.Flags().Bool("all", false, "include completed missions")
	MissionsCmd.AddCommand(listCmd)
}
