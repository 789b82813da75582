// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the alltheads CLI.
// Implements: prd001-discovery, prd002-report, prd003-history,
//             prd004-config (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eshkanala/AllTheAds/internal/credentials"
	"github.com/eshkanala/AllTheAds/internal/store"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the alltheads CLI.
var rootCmd = &cobra.Command{
	Use:   "alltheads",
	Short: "Find promotion channels for a niche",
	Long: `alltheads researches where to promote a product or a topic. Given a niche
keyword it searches Reddit, GitHub, Twitter, and (when an API key is
configured) YouTube for matching communities, topics, and hashtags, adds
generated dev.to, Quora, and Medium names, prints the aggregated report,
and exports it as JSON.

Every run is recorded in a local history database; use the history and
export subcommands to revisit earlier research.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return credentials.LoadDotenv()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./alltheads.yaml or ~/.config/alltheads/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("alltheads")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "alltheads"))
		}
	}

	viper.SetEnvPrefix("ALLTHEADS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- flag/config resolution helpers ---

// stringSetting returns the flag value when set on the command line, the
// config file value when present, and the flag default otherwise.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

// historyPath resolves the history database location: the --db flag, then
// the history.path config value, then the default in the working directory.
func historyPath(cmd *cobra.Command) string {
	path := stringSetting(cmd, "db", "history.path")
	if path == "" {
		path = store.DefaultPath
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
