// Package main is the timeslot command line tool.
package main

import (
	"os"

	"github.com/phrazzld/timeslot/cmd/timeslot/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
