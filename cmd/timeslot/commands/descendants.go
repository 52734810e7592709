package commands

import (
	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain"
)

func descendantsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "descendants VALUE PERIODICITY",
		Short: "List the slots of a finer periodicity starting within VALUE",
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

			children, err := slot.ToDescendants(p)
			if err != nil {
				return err
			}
			for _, child := range children {
				printLine(cmd.OutOrStdout(), e, child)
			}
			return nil
		},
	}
}
