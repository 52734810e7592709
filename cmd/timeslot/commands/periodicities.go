package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain"
)

func periodicitiesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "periodicities",
		Short: "List the supported periodicities, finest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range domain.Periodicities() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p, e.locale.HumanizePeriodicity(p))
			}
			return nil
		},
	}
}
