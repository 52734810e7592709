// Package commands implements the subcommands of the timeslot tool: show,
// from-date, ancestor, descendants and periodicities.
package commands
