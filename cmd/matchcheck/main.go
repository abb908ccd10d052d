// Command matchcheck evaluates declarative matcher suites against
// JSON documents.
package main

import (
	"os"

	"digital.vasic.matchers/internal/cli"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.BuildInfo{
		Version:   version,
		BuildTime: buildTime,
	}))
}
