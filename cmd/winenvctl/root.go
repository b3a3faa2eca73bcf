package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logFile string
)

// logOut is the file opened for --log-file.
var logOut *os.File

var rootCmd = &cobra.Command{
	Use:   "winenvctl",
	Short: "Inspect and influence the calling process tree on Windows",
	Long: `winenvctl exercises the wininterop layer from a shell: it sets variables
in the shell that launched it, reports 32/64-bit mismatches with that shell,
inspects the console, and reads and writes string values in the registry.`,
	Version:            "0.1.0",
	PersistentPreRunE:  startLogging,
	PersistentPostRunE: stopLogging,
	SilenceUsage:       true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Write structured debug logs to this file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func startLogging(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logOut = f
	return interop.EnableLogging(interop.LogOptions{Enabled: true, Writer: f, Level: slog.LevelDebug})
}

func stopLogging(cmd *cobra.Command, args []string) error {
	if logOut == nil {
		return nil
	}
	err := interop.EnableLogging(interop.LogOptions{})
	if cerr := logOut.Close(); err == nil {
		err = cerr
	}
	logOut = nil
	return err
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
