package missions

import "github.com/spf13/cobra"

var MissionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Manage recycling missions",
	Long:  "List your missions and inspect their progress and report history",
}
