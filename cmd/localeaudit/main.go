package main

import (
	"os"

	"localeaudit/internal/adapters/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.New(cli.BuildInfo{Version: version, Commit: commit, Date: date}, os.Stdout, os.Stderr)
	os.Exit(app.Run(os.Args[1:]))
}
