package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/timeslot"
)

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show VALUE",
		Short: "Describe a time slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := e.slot(args[0])
			if err != nil {
				return err
			}
			printDetails(cmd.OutOrStdout(), e, slot)
			return nil
		},
	}
}

func printDetails(w io.Writer, e *env, slot *timeslot.TimeSlot) {
	fmt.Fprintf(w, "value:       %s\n", slot.Value())
	fmt.Fprintf(w, "periodicity: %s\n", slot.Periodicity())
	fmt.Fprintf(w, "label:       %s\n", e.locale.HumanizeValue(slot.Periodicity(), slot.Value()))
	fmt.Fprintf(w, "first:       %s\n", slot.FirstInstant().Format(time.DateOnly))
	fmt.Fprintf(w, "last:        %s\n", slot.LastInstant().Format(time.DateOnly))
	fmt.Fprintf(w, "previous:    %s\n", valueOrDash(slot.Previous()))
	fmt.Fprintf(w, "next:        %s\n", valueOrDash(slot.Next()))
	fmt.Fprintf(w, "ancestors:   %s\n", joinPeriodicities(slot.AncestorPeriodicities()))
	fmt.Fprintf(w, "descendants: %s\n", joinPeriodicities(slot.DescendantPeriodicities()))
}

// printLine writes the one-line form used by list commands.
func printLine(w io.Writer, e *env, slot *timeslot.TimeSlot) {
	fmt.Fprintf(w, "%s\t%s\n", slot.Value(), e.locale.HumanizeValue(slot.Periodicity(), slot.Value()))
}

func valueOrDash(slot *timeslot.TimeSlot) string {
	if slot == nil {
		return "-"
	}
	return slot.Value()
}

func joinPeriodicities(ps []domain.Periodicity) string {
	if len(ps) == 0 {
		return "-"
	}
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return strings.Join(names, " ")
}
