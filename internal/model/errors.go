package model

import "errors"

// Sentinel errors for the failure kinds the commands can hit.
// Callers discriminate with errors.Is; the process exit code is
// always 1 regardless of kind.
var (
	// ErrNotARepository is returned when the current directory is not
	// inside a git repository. Commands must stop immediately.
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrBranchNameEmpty is returned when a command requiring a branch
	// name receives an empty one.
	ErrBranchNameEmpty = errors.New("branch name must not be empty")

	// ErrWorktreeNotFound is returned by remove when the conventional
	// worktree path for the branch does not exist as a directory.
	ErrWorktreeNotFound = errors.New("worktree not found")

	// ErrGitCommandFailed wraps any non-zero git exit. The cause is
	// unknown to this tool — it could be a lock conflict, an invalid
	// ref name, or an unrelated transient fault.
	ErrGitCommandFailed = errors.New("git command failed")
)
