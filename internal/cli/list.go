// Package cli — list.go implements the "wtree list" command.
//
// list renders `git worktree list --porcelain` output as a table (or
// JSON array) with one row per worktree: path, checked-out branch, and
// a short commit id. Rows stay in git's own reporting order.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wtree/internal/git"
	"github.com/mmr-tortoise/wtree/internal/worktree"
)

// shortHeadLen is how many hex chars of the commit id the table shows —
// git's own default abbreviation length.
const shortHeadLen = 7

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the repository's worktrees",
		Long: `List all worktrees git has registered for the current repository,
including the main working tree, in git's own order.

Examples:
  wtree list
  wtree list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

// runList queries the registry and prints it.
func runList() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	entries, err := worktree.List(git.NewCLI(), cwd)
	if err != nil {
		return err
	}
	VerboseLog("git reported %d worktree(s)", len(entries))

	if IsJSONOutput() {
		printListJSON(entries)
	} else {
		fmt.Print(renderListText(entries))
	}
	return nil
}

// listEntryJSON is the JSON shape for one worktree. Branch is the short
// name (empty when detached); head is the full commit id — truncation
// is a display concern.
type listEntryJSON struct {
	Path   string `json:"path"`
	Branch string `json:"branch,omitempty"`
	Head   string `json:"head"`
	Bare   bool   `json:"bare,omitempty"`
}

// printListJSON outputs the worktrees as a JSON object.
func printListJSON(entries []git.Entry) {
	type resultJSON struct {
		Worktrees []listEntryJSON `json:"worktrees"`
	}

	// Empty slice instead of nil so the output shows [] rather than null.
	result := resultJSON{Worktrees: make([]listEntryJSON, 0, len(entries))}

	for _, e := range entries {
		result.Worktrees = append(result.Worktrees, listEntryJSON{
			Path:   e.Path,
			Branch: branchName(e.Branch),
			Head:   e.HEAD,
			Bare:   e.IsBare,
		})
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// renderListText renders the worktrees as an aligned table. Returned as
// a string so tests can check the layout without capturing stdout.
//
//	PATH                          BRANCH        HEAD
//	/work/demo                    main          1f0a9c2
//	/work/demo_worktrees/feature  feature       83bd11e
func renderListText(entries []git.Entry) string {
	if len(entries) == 0 {
		return "No worktrees found.\n"
	}

	// The path column grows to fit the longest path; the branch column
	// to the longest branch name.
	pathWidth := len("PATH")
	branchWidth := len("BRANCH")
	for _, e := range entries {
		if w := len(e.Path); w > pathWidth {
			pathWidth = w
		}
		if w := len(branchDisplay(e)); w > branchWidth {
			branchWidth = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(
		fmt.Sprintf("%-*s  %-*s  %s", pathWidth, "PATH", branchWidth, "BRANCH", "HEAD")))

	for _, e := range entries {
		branch := branchDisplay(e)
		row := fmt.Sprintf("%-*s  %-*s  %s", pathWidth, e.Path, branchWidth, branch, shortHead(e.HEAD))
		if e.Branch == "" && !e.IsBare {
			// Detached rows are dimmed as a whole so the marker stands out.
			row = mutedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// branchDisplay is the branch column value: the short branch name, a
// "(bare)" marker for bare entries, or "(detached)" when no branch is
// checked out.
func branchDisplay(e git.Entry) string {
	if e.IsBare {
		return "(bare)"
	}
	if e.Branch == "" {
		return "(detached)"
	}
	return branchName(e.Branch)
}

// branchName strips the refs/heads/ prefix from a full branch ref.
func branchName(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}

// shortHead truncates a commit id for display.
func shortHead(head string) string {
	if len(head) > shortHeadLen {
		return head[:shortHeadLen]
	}
	return head
}
