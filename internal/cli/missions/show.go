package missions

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
	"ecoaliados/internal/mission"
	"ecoaliados/pkg/utils"
)

var showCmd = &cobra.Command{
	Use:   "show <mission-id>",
	Short: "Show one mission in detail",
	Args:  cobra.ExactArgs(1),
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

		m := mission.FindByID(missions, args[0])
		if m == nil {
			return fmt.Errorf("mission not found: %s", args[0])
		}

		printMission(*m)
		fmt.Println(m.Description)
		fmt.Println("")

		if len(m.Reports) == 0 {
			fmt.Println("No reports yet.")
			return nil
		}

		fmt.Printf("Recent reports (%d total):\n", len(m.Reports))
		// Most recent last in storage; show the newest five.
		start := len(m.Reports) - 5
		if start < 0 {
			start = 0
		}
		for i := len(m.Reports) - 1; i >= start; i-- {
			r := m.Reports[i]
			note := ""
			if r.Note != "" {
				note = " — " + r.Note
			}
			fmt.Printf("  +%g %s, %s%s\n", r.Added, m.Unit(), utils.TimeAgo(r.Timestamp), note)
		}
		return nil
	},
}

func init() {
	MissionsCmd.AddCommand(showCmd)
}
