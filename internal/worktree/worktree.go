// Package worktree implements the core operations behind the wtree
// commands: locating the repository, deriving the sibling worktree
// path for a branch, classifying a branch name, and the create / list /
// remove orchestrations.
//
// All git access goes through the git.Gateway interface, and the
// caller's working directory is passed in explicitly rather than read
// ambiently, so everything here is testable with an in-memory fake and
// a temp directory.
package worktree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/wtree/internal/git"
	"github.com/mmr-tortoise/wtree/internal/model"
)

// DefaultRemote is the only remote whose tracking refs are consulted
// when classifying a branch name.
const DefaultRemote = "origin"

// worktreesDirSuffix is appended to the repository name to form the
// sibling directory that holds all of its worktrees.
const worktreesDirSuffix = "_worktrees"

// Locate determines the repository containing cwd and derives its
// context. Returns model.ErrNotARepository when cwd is not inside one;
// callers must stop and surface the error without attempting anything
// further.
func Locate(g git.Gateway, cwd string) (model.RepositoryContext, error) {
	root, err := g.RepoRoot(cwd)
	if err != nil {
		return model.RepositoryContext{}, fmt.Errorf("%w: %s", model.ErrNotARepository, cwd)
	}
	return model.NewRepositoryContext(root), nil
}

// ResolveTarget derives the worktree location for a branch. Pure
// string concatenation, no I/O: the worktrees directory is always
// "<parent>/<name>_worktrees" — a sibling of the repository root, never
// a descendant — and the branch name is used verbatim as a path
// segment, so "team/feature" nests.
func ResolveTarget(rc model.RepositoryContext, branch string) model.WorktreeTarget {
	dir := filepath.Join(rc.Parent, rc.Name+worktreesDirSuffix)
	return model.WorktreeTarget{
		Branch: branch,
		Dir:    dir,
		Path:   filepath.Join(dir, branch),
	}
}

// ClassifyBranch decides the creation strategy for a branch name, in
// strict priority order: local branch, then remote-tracking ref under
// DefaultRemote, then not found.
//
// Local wins even when both exist: an operator who already has a local
// branch of that name wants to continue on their own commits, not
// silently switch to tracking the remote.
//
// Only locally-cached remote-tracking refs are consulted; there is no
// fetch. A remote branch the user never fetched classifies as
// BranchNotFound and create will silently start a fresh, diverging
// local branch — a known sharp edge, surfaced in documentation rather
// than papered over with an auto-fetch.
func ClassifyBranch(g git.Gateway, root, branch string) model.BranchResolution {
	if g.LocalBranchExists(root, branch) {
		return model.BranchLocal
	}
	if g.RemoteBranchExists(root, DefaultRemote, branch) {
		return model.BranchRemote
	}
	return model.BranchNotFound
}

// CreateResult reports what the create operation did.
type CreateResult struct {
	// Path is the worktree directory the caller's shell should cd to.
	Path string

	// Branch is the branch checked out at Path. For a reused directory
	// this is whatever is actually checked out there, which may differ
	// from the requested name; empty if it could not be determined.
	Branch string

	// Reused is true when the target directory already existed and was
	// returned as-is, without touching git.
	Reused bool

	// Resolution records how the branch name classified. Only
	// meaningful when Reused is false.
	Resolution model.BranchResolution
}

// Create makes (or reuses) the worktree for branch and returns the
// path to switch to.
//
// An existing directory at the target path is the success case, not a
// conflict: the caller is redirected there with whatever branch it has
// checked out. Existence alone is sufficient — no validation that the
// directory is a live worktree of this branch.
func Create(g git.Gateway, cwd, branch string) (CreateResult, error) {
	if branch == "" {
		return CreateResult{}, model.ErrBranchNameEmpty
	}

	rc, err := Locate(g, cwd)
	if err != nil {
		return CreateResult{}, err
	}

	target := ResolveTarget(rc, branch)

	if fi, statErr := os.Stat(target.Path); statErr == nil && fi.IsDir() {
		result := CreateResult{Path: target.Path, Reused: true}
		// Report whatever is checked out there. Failure to read it
		// (e.g. the directory is not actually a worktree) is not fatal;
		// the branch simply stays unknown.
		if current, branchErr := g.CurrentBranch(target.Path); branchErr == nil {
			result.Branch = current
		}
		return result, nil
	}

	// Idempotent: MkdirAll succeeds if the directory already exists.
	if err := os.MkdirAll(target.Dir, 0o755); err != nil {
		return CreateResult{}, fmt.Errorf("failed to create worktrees directory %s: %w", target.Dir, err)
	}

	resolution := ClassifyBranch(g, rc.Root, branch)
	if err := g.AddWorktree(rc.Root, target.Path, branch, !resolution.Exists()); err != nil {
		return CreateResult{}, err
	}

	return CreateResult{
		Path:       target.Path,
		Branch:     branch,
		Resolution: resolution,
	}, nil
}

// List returns all worktrees git has registered for the repository
// containing cwd, in git's own reporting order. The order is git's
// canonical one and is deliberately not re-sorted.
func List(g git.Gateway, cwd string) ([]git.Entry, error) {
	rc, err := Locate(g, cwd)
	if err != nil {
		return nil, err
	}
	return g.ListWorktrees(rc.Root)
}

// RemoveResult reports what the remove operation did.
type RemoveResult struct {
	// Path is the worktree directory that was removed.
	Path string

	// CleanedDir is true when the sibling worktrees directory was left
	// empty by the removal and was deleted too.
	CleanedDir bool
}

// Remove deletes the worktree for branch.
//
// The target is the conventional path from ResolveTarget — the registry
// is never consulted, so a worktree created elsewhere by hand is
// invisible to remove. If the path does not exist as a directory the
// operation fails with model.ErrWorktreeNotFound before git is invoked.
//
// force is passed through to `git worktree remove --force`; without it,
// git's refusal to delete a dirty worktree is surfaced unchanged. No
// automatic retry or forcing happens here — silent data loss is worse
// than asking the user to re-run with the flag.
func Remove(g git.Gateway, cwd, branch string, force bool) (RemoveResult, error) {
	if branch == "" {
		return RemoveResult{}, model.ErrBranchNameEmpty
	}

	rc, err := Locate(g, cwd)
	if err != nil {
		return RemoveResult{}, err
	}

	target := ResolveTarget(rc, branch)

	if fi, statErr := os.Stat(target.Path); statErr != nil || !fi.IsDir() {
		return RemoveResult{}, fmt.Errorf("%w: %s", model.ErrWorktreeNotFound, target.Path)
	}

	if err := g.RemoveWorktree(rc.Root, target.Path, force); err != nil {
		return RemoveResult{}, err
	}

	result := RemoveResult{Path: target.Path}

	// Housekeeping: drop the worktrees directory once the last worktree
	// is gone. Best effort — a failure here leaves an empty directory
	// behind, nothing worse.
	if empty, emptyErr := isEmptyDir(target.Dir); emptyErr == nil && empty {
		if rmErr := os.Remove(target.Dir); rmErr == nil {
			result.CleanedDir = true
		}
	}

	return result, nil
}

// isEmptyDir reports whether dir exists and contains no entries.
func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// IsNotFound reports whether err is the remove command's
// missing-worktree failure. Convenience for callers that want to
// phrase the message differently from other failures.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrWorktreeNotFound)
}
