// Package cli — remove.go implements the "wtree remove" command.
//
// remove derives the conventional worktree path for the branch — it
// never consults git's registry — and asks git to remove the worktree
// there. When the removal empties the sibling worktrees directory, the
// directory itself is deleted as housekeeping.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wtree/internal/git"
	"github.com/mmr-tortoise/wtree/internal/model"
	"github.com/mmr-tortoise/wtree/internal/worktree"
)

// removeFlags holds the flag values for the remove command.
type removeFlags struct {
	// force passes --force to git, allowing removal of a worktree with
	// uncommitted changes. Never applied automatically.
	force bool
}

// NewRemoveCommand creates the "remove" cobra command.
func NewRemoveCommand() *cobra.Command {
	flags := &removeFlags{}

	cmd := &cobra.Command{
		Use:   "remove <branch-name>",
		Short: "Remove the worktree for a branch",
		Long: `Remove the worktree for a branch from the sibling worktrees directory.

git refuses to remove a worktree with uncommitted changes; re-run with
--force to discard them. The branch itself is never deleted.

Examples:
  wtree remove feature-auth
  wtree remove --force feature-auth`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false,
		"Remove even if the worktree has uncommitted changes")

	return cmd
}

// runRemove orchestrates the remove operation and prints the result.
func runRemove(branch string, flags *removeFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	result, err := worktree.Remove(git.NewCLI(), cwd, branch, flags.force)
	if err != nil {
		if worktree.IsNotFound(err) {
			// The message carries the derived path so the user can see
			// exactly where the worktree was expected.
			return model.WrapCLIError(model.ExitFailure,
				fmt.Sprintf("no worktree for branch %q", branch), err)
		}
		if errors.Is(err, model.ErrGitCommandFailed) && !flags.force {
			return model.WrapCLIError(model.ExitFailure,
				fmt.Sprintf("failed to remove worktree for %q (uncommitted changes? retry with --force)", branch),
				err)
		}
		return err
	}

	printRemoveResult(branch, result)
	return nil
}

// printRemoveResult outputs the remove result in text or JSON format.
func printRemoveResult(branch string, result worktree.RemoveResult) {
	if IsJSONOutput() {
		out := map[string]interface{}{
			"branch":     branch,
			"path":       result.Path,
			"removed":    true,
			"cleanedDir": result.CleanedDir,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Removed worktree %s", result.Path)))
	if result.CleanedDir {
		fmt.Println(mutedStyle.Render("Removed now-empty worktrees directory"))
	}
}
