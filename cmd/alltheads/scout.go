// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eshkanala/AllTheAds/internal/channels"
	"github.com/eshkanala/AllTheAds/internal/credentials"
	"github.com/eshkanala/AllTheAds/internal/report"
	"github.com/eshkanala/AllTheAds/internal/store"
	"github.com/eshkanala/AllTheAds/pkg/types"
)

const (
	defaultTimeout        = 30 * time.Second
	defaultUserAgent      = "alltheads/0.1"
	defaultMaxPerCategory = 20
)

var scoutCmd = &cobra.Command{
	Use:   "scout [niche]",
	Short: "Research promotion channels for a niche",
	Long: `Scout searches Reddit, GitHub, Twitter, and (when an API key is
configured) YouTube for communities, topics, and hashtags matching the
niche, adds generated dev.to, Quora, and Medium names, prints the
aggregated report, and exports it to a file.

With no argument, scout prompts for the niche on standard input. A finder
failure is a warning, not an error: the report is still printed and
exported with whatever the other finders found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScout,
}

func runScout(cmd *cobra.Command, args []string) error {
	niche, err := nicheFromArgsOrPrompt(args)
	if err != nil {
		return err
	}
	if niche == "" {
		return fmt.Errorf("niche is empty: provide a topic to research")
	}

	cfg := scoutConfig(cmd)
	finders := channels.DefaultFinders(cfg)

	started := time.Now()
	rep, warnings, err := channels.Discover(context.Background(), niche, finders, cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	report.Print(rep, os.Stdout)

	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	if err := exportReport(rep, out, format); err != nil {
		return err
	}
	fmt.Printf("\nResults exported to %s\n", out)

	if !boolSetting(cmd, "no-history", "history.disabled") {
		recordRun(cmd, types.Run{
			Niche:     niche,
			CreatedAt: started,
			Duration:  time.Since(started),
			Warnings:  warnings,
			Report:    rep,
		})
	}
	return nil
}

// nicheFromArgsOrPrompt returns the niche argument, or prompts for one on
// standard input when no argument was given (R4.1).
func nicheFromArgsOrPrompt(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Print("Enter your niche/topic for promotion research: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading niche: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// scoutConfig assembles the discovery configuration from flags, config file
// values, and resolved credentials.
func scoutConfig(cmd *cobra.Command) types.DiscoveryConfig {
	timeout := durationSetting(cmd, "timeout", "http.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := viper.GetString("http.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxPerCategory := intSetting(cmd, "max", "max_per_category")
	if maxPerCategory <= 0 {
		maxPerCategory = defaultMaxPerCategory
	}

	return types.DiscoveryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		MaxPerCategory:   maxPerCategory,
		InterFinderDelay: durationSetting(cmd, "delay", "inter_finder_delay"),
		Reddit: types.RedditCredentials{
			ClientID: credentials.Resolve(credentials.EnvRedditClientID,
				viper.GetString("reddit.client_id"), credentials.PlaceholderRedditClientID),
			ClientSecret: credentials.Resolve(credentials.EnvRedditClientSecret,
				viper.GetString("reddit.client_secret"), credentials.PlaceholderRedditClientSecret),
		},
		TwitterBearerToken: credentials.Resolve(credentials.EnvTwitterBearerToken,
			viper.GetString("twitter.bearer_token"), credentials.PlaceholderTwitterBearerToken),
		YouTubeAPIKey: credentials.Resolve(credentials.EnvYouTubeAPIKey,
			viper.GetString("youtube.api_key"), ""),
	}
}

// recordRun saves the run to the history database. A history failure is a
// warning: the report has already been printed and exported (R2.3).
func recordRun(cmd *cobra.Command, run types.Run) {
	path := historyPath(cmd)
	st, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled for this run: %v\n", err)
		return
	}
	defer st.Close()

	id, err := st.SaveRun(context.Background(), run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording run failed: %v\n", err)
		return
	}
	fmt.Printf("Recorded run %d in %s\n", id, path)
}

// exportReport writes the report to path in the requested format.
func exportReport(rep types.ChannelReport, path, format string) error {
	switch format {
	case "json", "":
		return report.WriteJSON(rep, path)
	case "yaml":
		return report.WriteYAML(rep, path)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func init() {
	scoutCmd.Flags().String("out", report.DefaultFilename, "output file for the exported report")
	scoutCmd.Flags().String("format", "json", "export format: json or yaml")
	scoutCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	scoutCmd.Flags().Int("max", defaultMaxPerCategory, "maximum channels per category")
	scoutCmd.Flags().Duration("delay", 0, "pause between consecutive finders")
	scoutCmd.Flags().Bool("no-history", false, "do not record the run in the history database")
	scoutCmd.Flags().String("db", "", "history database file (default "+store.DefaultPath+")")

	rootCmd.AddCommand(scoutCmd)
}
