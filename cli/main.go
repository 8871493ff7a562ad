// ABOUTME: Entry point for the campusctl CLI
// ABOUTME: Command-line tool for campus modeling and CI/CD integration

package main

import (
	"fmt"
	"os"

	"github.com/lordSauron1710/dc-simulator-sub000/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
