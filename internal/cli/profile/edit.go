package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ecoaliados/internal/cli/local"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit profile name or avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		avatar, _ := cmd.Flags().GetString("avatar")

		if strings.TrimSpace(name) == "" && strings.TrimSpace(avatar) == "" {
			return fmt.Errorf("nothing to change, pass --name and/or --avatar")
		}

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

		if strings.TrimSpace(name) != "" {
			profile.Name = strings.TrimSpace(name)
		}
		if strings.TrimSpace(avatar) != "" {
			profile.Avatar = strings.TrimSpace(avatar)
		}

		if err := store.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		fmt.Printf("✓ Profile updated: %s %s\n", profile.Avatar, profile.Name)
		return nil
	},
}

func init() {
	editCmd.Flags().String("name", "", "new display name")
	editCmd.Flags().String("avatar", "", "new avatar (an emoji works best)")
	ProfileCmd.AddCommand(editCmd)
}
