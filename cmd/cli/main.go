// Package main is the entry point for the cloud-quote CLI.
package main

import (
	"os"

	"cloud-quote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
