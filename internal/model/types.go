// Package model defines the domain types for the wtree CLI.
//
// All entities here are transient: they are derived fresh on every
// invocation from the current working directory and git's own metadata,
// and nothing outlives a single command. The durable state (branches,
// commits, worktree registrations) belongs entirely to git.
package model

import (
	"fmt"
	"path/filepath"
)

// RepositoryContext describes the repository the current command
// operates on. It is derived once per invocation by the repository
// locator and never cached across commands.
type RepositoryContext struct {
	// Root is the absolute path to the repository's top-level directory,
	// as reported by `git rev-parse --show-toplevel`. This is the main
	// working tree root even when the command is run from a nested
	// subdirectory.
	Root string

	// Name is the final path component of Root, e.g. "demo" for
	// "/work/demo". It names the sibling worktrees directory.
	Name string

	// Parent is the directory containing Root. The worktrees directory
	// is created here, as a sibling of the repository — never inside it,
	// so git does not treat the worktrees as part of the main working tree.
	Parent string
}

// NewRepositoryContext derives a RepositoryContext from a repository
// root path. Name and Parent are pure string derivations of the root.
func NewRepositoryContext(root string) RepositoryContext {
	return RepositoryContext{
		Root:   root,
		Name:   filepath.Base(root),
		Parent: filepath.Dir(root),
	}
}

// WorktreeTarget is the derived location for one branch's worktree.
//
// Dir is always "<Parent>/<Name>_worktrees" and Path is "<Dir>/<Branch>".
// The branch name is used verbatim as a path segment, so a branch like
// "team/feature" yields a nested path — the same convention git itself
// uses for branch names. No sanitization is applied beyond the callers
// requiring a non-empty name.
type WorktreeTarget struct {
	// Branch is the branch name this target was derived for.
	Branch string

	// Dir is the sibling directory that holds all worktrees for the
	// repository.
	Dir string

	// Path is the worktree directory for Branch, inside Dir.
	Path string
}

// BranchResolution classifies a branch name for the create command.
// It decides which form of `git worktree add` is issued.
type BranchResolution string

const (
	// BranchLocal means a local branch with the exact name exists.
	BranchLocal BranchResolution = "local"

	// BranchRemote means no local branch exists but a remote-tracking
	// ref under the fixed remote does.
	BranchRemote BranchResolution = "remote"

	// BranchNotFound means the name matches no local or cached
	// remote-tracking ref. A new branch is created from HEAD.
	BranchNotFound BranchResolution = "not-found"
)

// String returns the string representation of the resolution,
// satisfying fmt.Stringer for verbose output.
func (r BranchResolution) String() string {
	return string(r)
}

// Exists reports whether the resolution refers to an existing branch
// (local or remote-tracking), as opposed to one that must be created.
func (r BranchResolution) Exists() bool {
	return r == BranchLocal || r == BranchRemote
}

// ExitCode defines the CLI exit codes. The external contract is
// binary: every failure path terminates with 1, success with 0.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates the command failed. Failure kinds are
	// distinguished by sentinel errors (see errors.go), not exit codes.
	ExitFailure ExitCode = 1
)

// CLIError is an error that carries an exit code and a user-facing
// message. The CLI layer translates every failure into one of these
// before the process terminates.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface. When an underlying error is
// present it is appended to the message for diagnostics.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, enabling errors.Is/errors.As
// checks against the sentinels in errors.go.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError without an underlying cause.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError wrapping an underlying error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
