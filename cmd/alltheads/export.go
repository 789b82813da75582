// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eshkanala/AllTheAds/internal/report"
	"github.com/eshkanala/AllTheAds/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a recorded run's report back to a file",
	Long: `Export writes the report of a stored run to a file in JSON or YAML.
Without --run it exports the most recent run.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	st, err := store.NewStore(historyPath(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	id, _ := cmd.Flags().GetInt64("run")
	if id == 0 {
		id, err = st.LatestRunID(ctx)
		if err != nil {
			return err
		}
	}

	run, err := st.GetRun(ctx, id)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	if err := exportReport(run.Report, out, format); err != nil {
		return err
	}
	fmt.Printf("Results exported to %s (run %d, %q)\n", out, id, run.Niche)
	return nil
}

func init() {
	exportCmd.Flags().Int64("run", 0, "run ID to export (0 = latest)")
	exportCmd.Flags().String("out", report.DefaultFilename, "output file")
	exportCmd.Flags().String("format", "json", "export format: json or yaml")
	exportCmd.Flags().String("db", "", "history database file (default "+store.DefaultPath+")")

	rootCmd.AddCommand(exportCmd)
}
