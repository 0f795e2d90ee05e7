package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/wtree/internal/git"
)

// Rendering tests assert on substrings rather than exact rows because
// the styles may wrap rows in escape sequences.

func TestRenderListText(t *testing.T) {
	entries := []git.Entry{
		{Path: "/work/demo", Branch: "refs/heads/main", HEAD: "1f0a9c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b"},
		{Path: "/work/demo_worktrees/feature", Branch: "refs/heads/feature", HEAD: "83bd11efffffffffffffffffffffffffffffffff"},
	}

	out := renderListText(entries)

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "BRANCH")
	assert.Contains(t, out, "HEAD")

	assert.Contains(t, out, "/work/demo")
	assert.Contains(t, out, "/work/demo_worktrees/feature")

	// Branch column shows short names, not full refs.
	assert.Contains(t, out, "main")
	assert.NotContains(t, out, "refs/heads/main")

	// Commit ids are truncated for display.
	assert.Contains(t, out, "1f0a9c2")
	assert.NotContains(t, out, "1f0a9c2d3e4f")
}

func TestRenderListTextDetached(t *testing.T) {
	entries := []git.Entry{
		{Path: "/work/demo_worktrees/pinned", HEAD: "aaaa11efffffffffffffffffffffffffffffffff"},
	}

	out := renderListText(entries)
	assert.Contains(t, out, "(detached)")
}

func TestRenderListTextBare(t *testing.T) {
	entries := []git.Entry{
		{Path: "/work/demo.git", IsBare: true},
	}

	out := renderListText(entries)
	assert.Contains(t, out, "(bare)")
}

func TestRenderListTextEmpty(t *testing.T) {
	assert.Equal(t, "No worktrees found.\n", renderListText(nil))
}

func TestBranchDisplay(t *testing.T) {
	assert.Equal(t, "main", branchDisplay(git.Entry{Branch: "refs/heads/main"}))
	assert.Equal(t, "team/feature", branchDisplay(git.Entry{Branch: "refs/heads/team/feature"}))
	assert.Equal(t, "(detached)", branchDisplay(git.Entry{}))
	assert.Equal(t, "(bare)", branchDisplay(git.Entry{IsBare: true}))
}

func TestShortHead(t *testing.T) {
	assert.Equal(t, "1f0a9c2", shortHead("1f0a9c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b"))
	assert.Equal(t, "abc", shortHead("abc"), "already-short ids pass through")
	assert.Equal(t, "", shortHead(""))
}

func TestListCommandRejectsArgs(t *testing.T) {
	cmd := NewListCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	err := cmd.Execute()
	require.Error(t, err)
}
