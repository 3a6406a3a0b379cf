// Package cli wires the command groups into the ecoaliados root command.
// Every command operates on the local store; there is no server to talk to.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	configcmd "ecoaliados/internal/cli/config"
	"ecoaliados/internal/cli/leaderboard"
	"ecoaliados/internal/cli/missions"
	"ecoaliados/internal/cli/profile"
	"ecoaliados/internal/cli/report"
	"ecoaliados/internal/cli/stats"
	"ecoaliados/internal/config"
	"ecoaliados/pkg/logger"
)

// NewRootCmd builds the root command with all groups attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ecoaliados",
		Short: "Track your recycling missions and rewards",
		Long:  "EcoAliados is a local missions-and-rewards tracker for recycled items: report counts, keep your streak alive and climb the leaderboard.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
			logger.Init(logger.Config{
				Level:  viper.GetString("logging.level"),
				Format: viper.GetString("logging.format"),
				Output: "stderr",
			})
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().String("data", "", "path of the data file (default ~/.ecoaliados/ecoaliados.db)")
	viper.BindPFlag("storage.path", root.PersistentFlags().Lookup("data"))

	root.AddCommand(missions.MissionsCmd)
	root.AddCommand(report.ReportCmd)
	root.AddCommand(stats.StatsCmd)
	root.AddCommand(leaderboard.LeaderboardCmd)
	root.AddCommand(profile.ProfileCmd)
	root.AddCommand(configcmd.ConfigCmd)

	return root
}

// initConfig seeds viper with defaults and layers the optional config file
// on top. Flags bound above take precedence over both.
func initConfig() {
	defaults := config.Default()
	viper.SetDefault("storage.path", defaults.Storage.Path)
	viper.SetDefault("ui.theme", defaults.UI.Theme)
	viper.SetDefault("ui.page_size", defaults.UI.PageSize)
	viper.SetDefault("leaderboard.variance", defaults.Leaderboard.Variance)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", defaults.Logging.Format)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.ecoaliados")
	viper.AddConfigPath("$HOME/.config/ecoaliados")
	viper.AddConfigPath(".")
	// Missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()
}
