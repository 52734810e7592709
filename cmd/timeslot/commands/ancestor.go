package commands

import (
	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain"
)

func ancestorCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ancestor VALUE PERIODICITY",
		Short: "Print the slot of a coarser periodicity containing VALUE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := e.slot(args[0])
			if err != nil {
				return err
			}
			p, err := domain.ParsePeriodicity(args[1])
			if err != nil {
				return err
			}

			ancestor, err := slot.ToAncestor(p)
			if err != nil {
				return err
			}
			printLine(cmd.OutOrStdout(), e, ancestor)
			return nil
		},
	}
}
