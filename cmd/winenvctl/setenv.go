package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
	"github.com/joshuapare/wininterop/pkg/types"
)

var (
	setenvPID     uint32
	setenvEntries []string
)

// envSetter is the part of *interop.Client that setenv uses.
type envSetter interface {
	SetEnv(pid types.ProcessID, key, value []byte) (types.Outcome, error)
}

// Replaced in tests.
var (
	newEnvSetter = func(opts interop.Options) envSetter { return interop.New(opts) }
	locateParent = interop.LocateCurrentAndParent
)

func init() {
	cmd := newSetenvCmd()
	cmd.Flags().Uint32Var(&setenvPID, "pid", 0, "Target process (default: the parent of winenvctl)")
	cmd.Flags().
		StringSliceVar(&setenvEntries, "entry", nil, "Entry point to try, as module!function (repeatable)")
	rootCmd.AddCommand(cmd)
}

func newSetenvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setenv <key> [value]",
		Short: "Set an environment variable in another process",
		Long: `The setenv command sets an environment variable in the process that
launched winenvctl, or in --pid. Omitting the value removes the variable.

The parent must be the same bitness as winenvctl and must not run at a
higher integrity level.

Example:
  winenvctl setenv OPAMSWITCH default
  winenvctl setenv OPAMSWITCH
  winenvctl setenv FOO bar --pid 4242 --entry ucrtbase.dll!_wputenv`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetenv(args)
		},
	}
	return cmd
}

// parseEntryPoints turns module!function strings into entry points.
func parseEntryPoints(specs []string) ([]interop.EntryPoint, error) {
	eps := make([]interop.EntryPoint, 0, len(specs))
	for _, s := range specs {
		mod, fn, ok := strings.Cut(s, "!")
		if !ok || mod == "" || fn == "" {
			return nil, fmt.Errorf("invalid entry point %q, want module!function", s)
		}
		eps = append(eps, interop.EntryPoint{Module: mod, Proc: fn})
	}
	return eps, nil
}

func runSetenv(args []string) error {
	key := args[0]
	var value string
	if len(args) > 1 {
		value = args[1]
	}

	eps, err := parseEntryPoints(setenvEntries)
	if err != nil {
		return err
	}
	client := newEnvSetter(interop.Options{Inject: interop.InjectOptions{EntryPoints: eps}})

	target := types.ProcessID(setenvPID)
	if target == 0 {
		if _, target, err = locateParent(); err != nil {
			return fmt.Errorf("failed to locate parent: %w", err)
		}
		printVerbose("Injecting into parent process %d\n", target)
	} else {
		printVerbose("Injecting into process %d\n", target)
	}

	outcome, err := client.SetEnv(target, []byte(key), []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := map[string]interface{}{
			"pid":     target,
			"key":     key,
			"value":   value,
			"outcome": outcome.String(),
		}
		return printJSON(result)
	}

	if outcome == types.OutcomeDeclined {
		printInfo("Process %d declined %s\n", target, key)
		return nil
	}
	if value == "" {
		printInfo("✓ Removed %s from process %d\n", key, target)
	} else {
		printInfo("✓ Set %s=%s in process %d\n", key, value, target)
	}
	return nil
}
