package main

import (
	"github.com/tacogips/dotool/internal/cli"
)

// Build metadata (set via ldflags during build)
var (
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.GitCommit = gitCommit
	cli.BuildDate = buildDate

	cli.Execute()
}
