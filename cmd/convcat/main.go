// Package main is the convcat command.
package main

import (
	"os"

	"github.com/leapstack-labs/convcat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
