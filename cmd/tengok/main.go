package main

import (
	"os"

	"github.com/idelchi/tengok/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
