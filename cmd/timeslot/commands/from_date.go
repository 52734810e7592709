package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain"
)

func fromDateCmd(e *env) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "from-date DATE [PERIODICITY]",
		Short: "Find the time slot containing a date (YYYY-MM-DD)",
		Long: "Find the time slot of the given periodicity containing DATE. " +
			"With --all, print the slot of every periodicity.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(time.DateOnly, args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
			}

			var periodicities []domain.Periodicity
			switch {
			case all:
				periodicities = domain.Periodicities()
			case len(args) == 2:
				p, err := domain.ParsePeriodicity(args[1])
				if err != nil {
					return err
				}
				periodicities = []domain.Periodicity{p}
			default:
				return fmt.Errorf("a periodicity or --all is required")
			}

			for _, p := range periodicities {
				slot, err := e.cache.FromInstant(date, p)
				if err != nil {
					return err
				}
				printLine(cmd.OutOrStdout(), e, slot)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print the slot of every periodicity")
	return cmd
}
