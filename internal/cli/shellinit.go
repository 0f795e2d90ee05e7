// Package cli — shellinit.go implements the "wtree shell-init" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wtree/internal/shell"
)

// NewShellInitCommand creates the "shell-init" cobra command. It prints
// the wt / wt-list / wt-remove wrapper functions for eval'ing in the
// user's rc file — the wrappers are where the actual `cd` happens,
// since a child process cannot move its parent shell.
func NewShellInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-init [bash|zsh]",
		Short: "Print the shell wrapper functions",
		Long: `Print the wt, wt-list and wt-remove shell functions.

Add to your rc file:
  eval "$(wtree shell-init bash)"    # ~/.bashrc
  eval "$(wtree shell-init zsh)"     # ~/.zshrc`,

		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{shell.Bash, shell.Zsh},

		RunE: func(cmd *cobra.Command, args []string) error {
			name := shell.Bash
			if len(args) == 1 {
				name = args[0]
			}

			script, err := shell.Script(name)
			if err != nil {
				return err
			}

			// cmd.OutOrStdout so tests can capture the script.
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}
}
