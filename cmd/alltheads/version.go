package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of alltheads",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("alltheads %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
