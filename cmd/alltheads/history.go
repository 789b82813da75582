// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eshkanala/AllTheAds/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded discovery runs",
	Long: `History lists the runs recorded in the local history database, newest
first, with each run's niche, timestamp, channel count, and warning count.
Use the export subcommand to write a stored run's report back to a file.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(historyPath(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	niche, _ := cmd.Flags().GetString("niche")
	limit, _ := cmd.Flags().GetInt("limit")

	runs, err := st.ListRuns(context.Background(), store.ListOptions{Niche: niche, Limit: limit})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(runs, jsonOutput)
}

func formatHistoryOutput(runs []store.RunSummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-30s  %-8s  %s\n",
		"ID", "Created", "Niche", "Channels", "Warnings")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))

	for _, r := range runs {
		niche := r.Niche
		if len(niche) > 30 {
			niche = niche[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-30s  %-8d  %d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), niche, r.Channels, len(r.Warnings))
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().String("niche", "", "only list runs whose niche contains this text")
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = all)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")
	historyCmd.Flags().String("db", "", "history database file (default "+store.DefaultPath+")")

	rootCmd.AddCommand(historyCmd)
}
