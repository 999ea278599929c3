// Package main is the entry point for the aocrun CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/aocrun/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
