// Package git wraps the git CLI behind a narrow Gateway interface.
//
// Every meaningful operation of wtree is a git subprocess; this package
// is the only place those subprocesses are spawned. We shell out to
// `git` rather than using a Go Git library (e.g., go-git) because
// worktree operations require full Git CLI compatibility, and go-git's
// worktree support is limited.
//
// The Gateway interface exists so the branch resolver and the command
// handlers can be unit-tested against an in-memory fake without a real
// repository. The production implementation (CLI) is itself tested
// against throwaway repositories created with `git init`.
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mmr-tortoise/wtree/internal/model"
)

// Entry holds metadata about a single worktree as parsed from
// `git worktree list --porcelain` output.
//
// Example porcelain block:
//
//	worktree /path/to/feature-branch
//	HEAD abc123def456
//	branch refs/heads/feature-branch
type Entry struct {
	// Path is the absolute filesystem path to the worktree directory.
	Path string

	// Branch is the full branch reference (e.g., "refs/heads/main").
	// Empty when the worktree is in a detached HEAD state.
	Branch string

	// HEAD is the commit SHA the worktree currently points to.
	HEAD string

	// IsBare marks the bare-repository entry that git includes in the
	// listing for bare setups.
	IsBare bool
}

// Gateway is the version-control surface wtree depends on. Production
// code uses CLI; tests substitute an in-memory fake.
type Gateway interface {
	// RepoRoot returns the top-level directory of the repository
	// containing dir, or an error if dir is not inside one.
	RepoRoot(dir string) (string, error)

	// CurrentBranch returns the short name of the branch checked out
	// at dir ("HEAD" when detached).
	CurrentBranch(dir string) (string, error)

	// LocalBranchExists reports whether refs/heads/<branch> exists.
	LocalBranchExists(root, branch string) bool

	// RemoteBranchExists reports whether refs/remotes/<remote>/<branch>
	// exists. Only locally-cached remote-tracking refs are consulted;
	// no fetch is ever performed.
	RemoteBranchExists(root, remote, branch string) bool

	// AddWorktree registers a worktree at path. With createBranch set
	// it creates a new branch of that name from HEAD; otherwise it
	// checks out the existing branch (git resolves a remote-tracking
	// ref into a local tracking branch itself).
	AddWorktree(root, path, branch string, createBranch bool) error

	// ListWorktrees returns all registered worktrees in git's own
	// reporting order.
	ListWorktrees(root string) ([]Entry, error)

	// RemoveWorktree unregisters and deletes the worktree at path.
	// force allows removal despite uncommitted changes.
	RemoveWorktree(root, path string, force bool) error
}

// execCommand is swapped out in tests to intercept subprocess creation.
var execCommand = exec.Command

// CLI is the production Gateway, invoking the git binary for every
// operation. It is stateless; the struct exists as a receiver to allow
// future extension (custom git binary path, tracing).
type CLI struct{}

// NewCLI creates the production gateway.
func NewCLI() *CLI {
	return &CLI{}
}

// RepoRoot runs `git rev-parse --show-toplevel`, which works from any
// nested subdirectory and returns the root of whichever working tree
// contains dir.
func (c *CLI) RepoRoot(dir string) (string, error) {
	output, err := runGit(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// CurrentBranch runs `git rev-parse --abbrev-ref HEAD`, which yields
// the short branch name, or the literal "HEAD" when detached.
func (c *CLI) CurrentBranch(dir string) (string, error) {
	output, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// LocalBranchExists checks refs/heads/<branch> with
// `git show-ref --verify --quiet`. A non-zero exit means the ref does
// not exist; we only care about the exit code.
func (c *CLI) LocalBranchExists(root, branch string) bool {
	_, err := runGit(root, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// RemoteBranchExists checks refs/remotes/<remote>/<branch>. This reads
// the locally-cached remote-tracking ref only — it never contacts the
// remote, so a branch the user has never fetched will not be found.
func (c *CLI) RemoteBranchExists(root, remote, branch string) bool {
	_, err := runGit(root, "show-ref", "--verify", "--quiet",
		"refs/remotes/"+remote+"/"+branch)
	return err == nil
}

// AddWorktree issues one of the two add forms:
//
//	git worktree add -b <branch> <path>   (new branch from HEAD)
//	git worktree add <path> <branch>      (existing branch or remote DWIM)
//
// The second form lets git itself create a local tracking branch when
// <branch> only exists as <remote>/<branch>.
func (c *CLI) AddWorktree(root, path, branch string, createBranch bool) error {
	var args []string
	if createBranch {
		args = []string{"worktree", "add", "-b", branch, path}
	} else {
		args = []string{"worktree", "add", path, branch}
	}
	_, err := runGit(root, args...)
	return err
}

// ListWorktrees runs `git worktree list --porcelain` and parses the
// machine-readable output. Order is preserved exactly as git reports it.
func (c *CLI) ListWorktrees(root string) ([]Entry, error) {
	output, err := runGit(root, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(output), nil
}

// RemoveWorktree runs `git worktree remove [--force] <path>`. Without
// force, git refuses to remove a worktree with uncommitted changes —
// that refusal is surfaced to the user rather than overridden.
func (c *CLI) RemoveWorktree(root, path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = []string{"worktree", "remove", "--force", path}
	}
	_, err := runGit(root, args...)
	return err
}

// runGit executes a git command in the given directory via `git -C`.
//
// -C is handled by git itself before any subcommand runs, which avoids
// changing this process's working directory. Stdout and stderr are
// captured separately so stderr can be folded into error messages while
// stdout is returned on success. Non-zero exits come back wrapped in
// model.ErrGitCommandFailed.
func runGit(dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := execCommand("git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		message := fmt.Sprintf("git %s", strings.Join(args, " "))
		if s := strings.TrimSpace(stderr.String()); s != "" {
			message = fmt.Sprintf("%s: %s", message, s)
		}
		return "", fmt.Errorf("%w: %s: %v", model.ErrGitCommandFailed, message, err)
	}

	return stdout.String(), nil
}

// parsePorcelain parses `git worktree list --porcelain` output.
//
// Blocks are separated by blank lines; within a block each line is a
// space-separated key-value pair, with standalone markers like "bare"
// or "detached". A detached worktree simply has no "branch" line, so
// its Entry carries an empty Branch.
func parsePorcelain(output string) []Entry {
	var entries []Entry

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	var current *Entry
	for _, line := range lines {
		if line == "" {
			if current != nil {
				entries = append(entries, *current)
				current = nil
			}
			continue
		}

		key, value, _ := strings.Cut(line, " ")

		switch key {
		case "worktree":
			current = &Entry{Path: value}
		case "HEAD":
			if current != nil {
				current.HEAD = value
			}
		case "branch":
			if current != nil {
				current.Branch = value
			}
		case "bare":
			if current != nil {
				current.IsBare = true
			}
		}
	}

	// Last block when the output doesn't end with a blank line.
	if current != nil {
		entries = append(entries, *current)
	}

	return entries
}
