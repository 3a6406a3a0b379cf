package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective EcoAliados configuration after defaults, config file and flags",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("EcoAliados Configuration:")
		fmt.Println("")
		fmt.Printf("Storage:\n")
		fmt.Printf("  Data file: %s\n", viper.GetString("storage.path"))
		fmt.Println("")
		fmt.Printf("UI:\n")
		fmt.Printf("  Theme: %s\n", viper.GetString("ui.theme"))
		fmt.Printf("  Page size: %d\n", viper.GetInt("ui.page_size"))
		fmt.Println("")
		fmt.Printf("Leaderboard:\n")
		fmt.Printf("  Variance: %g\n", viper.GetFloat64("leaderboard.variance"))
		fmt.Println("")
		fmt.Printf("Logging:\n")
		fmt.Printf("  Level: %s\n", viper.GetString("logging.level"))
		fmt.Printf("  Format: %s\n", viper.GetString("logging.format"))
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Println("")
			fmt.Printf("Loaded from: %s\n", file)
		}
	},
}

func init() {
	ConfigCmd.AddCommand(showCmd)
}
