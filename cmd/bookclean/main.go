// Package main is the entry point for the bookclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/bookclean/cmd/bookclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
