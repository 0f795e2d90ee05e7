// Package main is the entry point for the wtree CLI.
//
// The binary manages git worktrees kept in a sibling directory named
// after the repository. All functionality lives in internal/cli; this
// file only injects build-time version information and executes the
// root command.
package main

import (
	"github.com/mmr-tortoise/wtree/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
