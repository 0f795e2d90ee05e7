// Package cli — create.go implements the "wtree create" command.
//
// create is the workhorse: it resolves the repository, derives the
// sibling worktree path for the branch, classifies the branch name
// (local / remote-tracking / new), and issues the matching
// `git worktree add` form.
//
// stdout carries exactly one line on success — the worktree path — so
// the wt() shell wrapper can capture it and cd. All human commentary
// goes to stderr.
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

// NewCreateCommand creates the "create" cobra command.
func NewCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <branch-name>",
		Short: "Create (or switch to) the worktree for a branch",
		Long: `Create the worktree for a branch under the sibling worktrees directory.

If the worktree directory already exists it is reused as-is. If the
branch exists locally (or as a cached origin tracking ref) it is checked
out; otherwise a new branch is created from the current HEAD.

Note that only locally-cached remote refs are consulted — wtree never
fetches. A remote branch you have not fetched yet will come up as
unknown and a fresh local branch is created instead.

Examples:
  wtree create feature-auth
  wtree create team/feature    (nests: .../demo_worktrees/team/feature)`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0])
		},
	}
}

// runCreate orchestrates the create operation and prints the result.
func runCreate(branch string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitFailure, "failed to get current directory", err)
	}

	gw := git.NewCLI()
	VerboseLog("Resolving worktree for branch %q from %s", branch, cwd)

	result, err := worktree.Create(gw, cwd, branch)
	if err != nil {
		// A git refusal has a cause this tool cannot see: the branch may
		// already be checked out in another worktree, the name may be an
		// invalid ref, or something else entirely. Pass the hint along.
		if errors.Is(err, model.ErrGitCommandFailed) {
			return model.WrapCLIError(model.ExitFailure,
				fmt.Sprintf("failed to create worktree for %q (is the branch checked out elsewhere, or the name invalid?)", branch),
				err)
		}
		return err
	}

	if result.Reused {
		VerboseLog("Reusing existing directory %s", result.Path)
	} else {
		VerboseLog("Branch resolved as %s, worktree added at %s", result.Resolution, result.Path)
	}

	printCreateResult(branch, result)
	return nil
}

// printCreateResult outputs the create result. Text mode prints the
// path as the only stdout line; JSON mode prints a single object.
func printCreateResult(branch string, result worktree.CreateResult) {
	if IsJSONOutput() {
		out := map[string]interface{}{
			"branch": result.Branch,
			"path":   result.Path,
			"reused": result.Reused,
		}
		if !result.Reused {
			out["resolution"] = result.Resolution.String()
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Fprintln(os.Stderr, successStyle.Render(createSummary(branch, result)))
	fmt.Println(result.Path)
}

// createSummary phrases what happened for the human on stderr.
func createSummary(branch string, result worktree.CreateResult) string {
	if result.Reused {
		if result.Branch != "" {
			return fmt.Sprintf("Worktree already exists, switching to it (checked out: %s)", result.Branch)
		}
		return "Worktree directory already exists, switching to it"
	}

	switch result.Resolution {
	case model.BranchLocal:
		return fmt.Sprintf("Created worktree for local branch %q", branch)
	case model.BranchRemote:
		return fmt.Sprintf("Created worktree for %s/%s", worktree.DefaultRemote, branch)
	default:
		return fmt.Sprintf("Created worktree with new branch %q from HEAD", branch)
	}
}
