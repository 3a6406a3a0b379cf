package profile

import "github.com/spf13/cobra"

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
	Long:  "Show the local profile or change its display name and avatar",
}
