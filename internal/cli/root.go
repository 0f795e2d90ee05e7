// Package cli implements the cobra-based commands for wtree.
//
// Each subcommand (create, list, remove, shell-init) lives in its own
// file. This file defines the root command, the global flags, and the
// error-to-exit-code translation.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wtree/internal/model"
)

// Global flag variables bound to persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput switches all command output to structured JSON for
	// machine consumption.
	jsonOutput bool

	// verbose enables trace output on stderr.
	verbose bool
)

// version, commit, and date are set at build time via ldflags and
// injected from the main package.
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Output styles. Everything styled is written to stderr (human
// commentary) or is a display-only column; stdout payloads that shell
// wrappers capture stay unstyled.
var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command performs no action of its own; it carries the global
// flags and the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wtree",
		Short: "Keep per-branch git worktrees in a sibling directory",
		Long: `wtree manages git worktrees stored in a sibling directory named after
the repository: worktrees for /work/demo live under /work/demo_worktrees,
one per branch.

wtree never changes your shell's directory itself — install the shell
wrappers to get the wt / wt-list / wt-remove functions that do:

  eval "$(wtree shell-init bash)"`,

		// We format errors ourselves, so keep cobra quiet.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewCreateCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewShellInitCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into process
// exit codes. CLIError values carry their own code; everything else —
// including cobra's own usage errors for missing arguments — exits 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitFailure))
	}
}

// printError writes an error in the appropriate format. Errors always
// go to stderr, even in JSON mode, because stdout is reserved for
// successful command output (the shell wrapper captures it).
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("Error:"), message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("Error:"), message)
		}
	}
}

// VerboseLog prints a trace line to stderr when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
