// Package shell emits the wrapper functions users install in their
// shell rc file.
//
// A child process cannot change its parent shell's working directory,
// so the directory switch after `create` has to happen in the caller's
// shell. The wrappers keep that shim as thin as possible: `wt` captures
// the path the binary prints on stdout and cds to it; the other two
// wrappers are plain aliases.
package shell

import "fmt"

// Supported shells. bash and zsh share the same function syntax,
// including hyphenated function names.
const (
	Bash = "bash"
	Zsh  = "zsh"
)

const wrapperScript = `# wtree shell integration (%s).
# Install by adding to your shell rc file:
#   eval "$(wtree shell-init %s)"

# Create (or reuse) the worktree for a branch and cd into it.
# wtree prints the worktree path as its only stdout line; everything
# human-readable goes to stderr, so the capture stays clean.
wt() {
  local p
  p="$(command wtree create "$@")" && cd "$p"
}

# List the repository's worktrees.
wt-list() {
  command wtree list "$@"
}

# Remove the worktree for a branch.
wt-remove() {
  command wtree remove "$@"
}
`

// Script returns the wrapper function definitions for the named shell.
// Unknown shells are rejected rather than guessed at.
func Script(name string) (string, error) {
	switch name {
	case Bash, Zsh:
		return fmt.Sprintf(wrapperScript, name, name), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh)", name)
	}
}
