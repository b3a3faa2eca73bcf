package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
	"github.com/joshuapare/wininterop/pkg/types"
)

var regBroadcast bool

func init() {
	cmd := &cobra.Command{
		Use:   "reg",
		Short: "Read and write string values in the live registry",
	}

	set := newRegSetCmd()
	set.Flags().
		BoolVar(&regBroadcast, "broadcast", false, "Notify running programs that the environment changed")

	cmd.AddCommand(set, newRegGetCmd())
	rootCmd.AddCommand(cmd)
}

func newRegSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <root> <path> <name> <value>",
		Short: "Write a REG_SZ value",
		Long: `The set command writes a string value under an existing key. Keys are
never created. Roots may be given long (HKEY_CURRENT_USER) or short (HKCU).

Example:
  winenvctl reg set HKCU Environment OPAMROOT "C:\\opam" --broadcast
  winenvctl reg set HKEY_CURRENT_USER "Software\\MyApp" Version 1.0.0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegSet(args)
		},
	}
}

func runRegSet(args []string) error {
	root, err := types.ParseRoot(args[0])
	if err != nil {
		return err
	}
	path, name, value := args[1], args[2], args[3]

	printVerbose("Writing %s\\%s\n", root, path)
	if err := interop.WriteStringValue(root, path, name, []byte(value)); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	if regBroadcast {
		printVerbose("Broadcasting environment change\n")
		if err := interop.BroadcastEnvironmentChange(0); err != nil {
			return fmt.Errorf("value written but broadcast failed: %w", err)
		}
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"root":    root.String(),
			"path":    path,
			"name":    name,
			"type":    types.REG_SZ.String(),
			"success": true,
		}
		return printJSON(result)
	}

	printInfo("\nSetting value:\n")
	printInfo("  Path: %s\\%s\n", root, path)
	printInfo("  Name: %s\n", name)
	printInfo("  Value: %s\n", value)
	printInfo("\n✓ Value set successfully\n")
	return nil
}

func newRegGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <root> <path> <name>",
		Short: "Read a string value",
		Long: `The get command prints a REG_SZ or REG_EXPAND_SZ value without expanding it.

Example:
  winenvctl reg get HKCU Environment PATH`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegGet(args)
		},
	}
}

func runRegGet(args []string) error {
	root, err := types.ParseRoot(args[0])
	if err != nil {
		return err
	}
	path, name := args[1], args[2]

	value, err := interop.ReadStringValue(root, path, name)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"root":  root.String(),
			"path":  path,
			"name":  name,
			"value": value,
		}
		return printJSON(result)
	}
	printInfo("%s\n", value)
	return nil
}
