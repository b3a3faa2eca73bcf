package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("winenvctl %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		if v, err := interop.Version(); err == nil {
			fmt.Printf("  windows: %s\n", v)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
