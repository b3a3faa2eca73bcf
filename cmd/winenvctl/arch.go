package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
)

func init() {
	rootCmd.AddCommand(newArchCmd())
}

func newArchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arch",
		Short: "Report WoW64 status of winenvctl and its parent",
		Long: `The arch command reports whether winenvctl runs under WoW64 and whether
its parent runs under a different mode. A mismatch means setenv cannot reach
the parent.

Example:
  winenvctl arch
  winenvctl arch --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArch()
		},
	}
	return cmd
}

func runArch() error {
	pid, parent, err := interop.LocateCurrentAndParent()
	if err != nil {
		return fmt.Errorf("failed to locate parent: %w", err)
	}
	wow64, err := interop.IsWow64Current()
	if err != nil {
		return fmt.Errorf("failed to query WoW64: %w", err)
	}
	mismatch, err := interop.DetectMismatch()
	if err != nil {
		return fmt.Errorf("failed to compare with parent: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"pid":      pid,
			"parent":   parent,
			"wow64":    wow64,
			"mismatch": mismatch != 0,
		}
		return printJSON(result)
	}

	printInfo("\nProcess:\n")
	printInfo("  PID: %d\n", pid)
	printInfo("  Parent: %d\n", parent)
	printInfo("  WoW64: %t\n", wow64)
	if mismatch != 0 {
		printInfo("\n✗ Parent %d runs under a different WoW64 mode\n", mismatch)
	} else {
		printInfo("\n✓ Parent matches\n")
	}
	return nil
}
