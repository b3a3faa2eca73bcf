package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/wininterop/pkg/interop"
	"github.com/joshuapare/wininterop/pkg/types"
)

var (
	consoleMaxWindow bool
	cpSetOutput      uint32
	cpSetInput       uint32
)

func init() {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Inspect the attached console",
	}

	info := newConsoleInfoCmd()
	info.Flags().BoolVar(&consoleMaxWindow, "max-window", false, "Report the font for the maximized window")

	cp := newConsoleCodePageCmd()
	cp.Flags().Uint32Var(&cpSetOutput, "set-output", 0, "Set the output code page")
	cp.Flags().Uint32Var(&cpSetInput, "set-input", 0, "Set the input code page")

	cmd.AddCommand(info, cp, newConsoleGlyphsCmd())
	rootCmd.AddCommand(cmd)
}

func newConsoleInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show screen buffer, mode and font of standard output",
		Long: `The info command reports the screen buffer, console mode, code pages and
font of the console bound to standard output.

Example:
  winenvctl console info
  winenvctl console info --max-window --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsoleInfo()
		},
	}
}

type consoleReport struct {
	Buffer         types.ScreenBufferInfo `json:"buffer"`
	Mode           uint32                 `json:"mode"`
	OutputCodePage uint32                 `json:"output_code_page"`
	InputCodePage  uint32                 `json:"input_code_page"`
	Font           *types.FontDescriptor  `json:"font,omitempty"`
}

func runConsoleInfo() error {
	h, err := interop.StdHandle(types.StdOutput)
	if err != nil {
		return fmt.Errorf("no console on stdout: %w", err)
	}

	var r consoleReport
	if r.Buffer, err = interop.ScreenBufferInfo(h); err != nil {
		return fmt.Errorf("stdout is not a console: %w", err)
	}
	if r.Mode, err = interop.ConsoleMode(h); err != nil {
		return fmt.Errorf("failed to read console mode: %w", err)
	}
	if r.OutputCodePage, err = interop.OutputCodePage(); err != nil {
		return fmt.Errorf("failed to read output code page: %w", err)
	}
	if r.InputCodePage, err = interop.InputCodePage(); err != nil {
		return fmt.Errorf("failed to read input code page: %w", err)
	}
	font, err := interop.CurrentFont(h, consoleMaxWindow)
	switch {
	case err == nil:
		r.Font = &font
	case errors.Is(err, types.ErrNotFound):
		printVerbose("Font information unavailable: %v\n", err)
	default:
		return fmt.Errorf("failed to read console font: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(r)
	}

	b := r.Buffer
	printInfo("\nConsole:\n")
	printInfo("  Buffer: %dx%d\n", b.Size.X, b.Size.Y)
	printInfo("  Cursor: %d,%d\n", b.Cursor.X, b.Cursor.Y)
	printInfo("  Window: %d,%d-%d,%d\n", b.Window.Left, b.Window.Top, b.Window.Right, b.Window.Bottom)
	printInfo("  Max window: %dx%d\n", b.MaxWindowSize.X, b.MaxWindowSize.Y)
	printInfo("  Attributes: 0x%04X\n", b.Attributes)
	printInfo("  Mode: 0x%08X\n", r.Mode)
	printInfo("  Code pages: output %d, input %d\n", r.OutputCodePage, r.InputCodePage)
	if r.Font != nil {
		printInfo("  Font: %s %dx%d (weight %d)\n", r.Font.FaceName, r.Font.CellSize.X, r.Font.CellSize.Y, r.Font.Weight)
	}
	return nil
}

func newConsoleCodePageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codepage",
		Short: "Show or change the console code pages",
		Long: `The codepage command prints the console's input and output code pages,
after applying --set-output and --set-input when given.

Example:
  winenvctl console codepage
  winenvctl console codepage --set-output 65001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsoleCodePage()
		},
	}
}

func runConsoleCodePage() error {
	if cpSetOutput != 0 {
		if err := interop.SetOutputCodePage(cpSetOutput); err != nil {
			return fmt.Errorf("failed to set output code page %d: %w", cpSetOutput, err)
		}
		printVerbose("Output code page set to %d\n", cpSetOutput)
	}
	if cpSetInput != 0 {
		if err := interop.SetInputCodePage(cpSetInput); err != nil {
			return fmt.Errorf("failed to set input code page %d: %w", cpSetInput, err)
		}
		printVerbose("Input code page set to %d\n", cpSetInput)
	}

	out, err := interop.OutputCodePage()
	if err != nil {
		return fmt.Errorf("failed to read output code page: %w", err)
	}
	in, err := interop.InputCodePage()
	if err != nil {
		return fmt.Errorf("failed to read input code page: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]uint32{"output": out, "input": in})
	}
	printInfo("Output: %d\nInput: %d\n", out, in)
	return nil
}

func newConsoleGlyphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs <font> <text>",
		Short: "Check which characters a font can render",
		Long: `The glyphs command reports, for each character of text, whether the named
font has a glyph for it. Characters outside the Basic Multilingual Plane are
rejected.

Example:
  winenvctl console glyphs Consolas "├─┤"
  winenvctl console glyphs "Lucida Console" "✓✗" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsoleGlyphs(args)
		},
	}
}

func runConsoleGlyphs(args []string) error {
	font := args[0]
	cps := []rune(args[1])

	present, err := interop.CheckGlyphs(font, cps)
	if err != nil {
		return fmt.Errorf("failed to check glyphs: %w", err)
	}

	// Output as JSON if requested
	if jsonOut {
		result := make([]map[string]interface{}, len(cps))
		for i, r := range cps {
			result[i] = map[string]interface{}{
				"char":      string(r),
				"codepoint": fmt.Sprintf("U+%04X", r),
				"present":   present[i],
			}
		}
		return printJSON(result)
	}

	printInfo("\nGlyphs in %s:\n", font)
	for i, r := range cps {
		mark := "✓"
		if !present[i] {
			mark = "✗"
		}
		printInfo("  %s U+%04X %c\n", mark, r, r)
	}
	return nil
}
