package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/timeslot/internal/domain/strategy"
	"github.com/phrazzld/timeslot/internal/locale"
	"github.com/phrazzld/timeslot/internal/timeslot"
)

// env is the state shared by every subcommand of one invocation.
type env struct {
	lang  string
	check bool

	cache  *timeslot.Cache
	locale locale.Locale
}

// slot resolves a value, rejecting non-canonical ones unless --check=false.
func (e *env) slot(value string) (*timeslot.TimeSlot, error) {
	if e.check {
		return e.cache.FromValueChecked(value)
	}
	return e.cache.FromValue(value)
}

// Execute runs the tool with the process arguments.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "timeslot",
		Short:        "Resolve, navigate and label calendar periods",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := locale.Lookup(e.lang)
			if err != nil {
				return err
			}
			e.locale = l
			e.cache = timeslot.NewCache(strategy.Default())
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&e.lang, "lang", "l", "en", "label language (en, es, fr)")
	root.PersistentFlags().BoolVar(&e.check, "check", true, "reject values that are not canonical, such as 2017-13")

	root.AddCommand(
		showCmd(e),
		fromDateCmd(e),
		ancestorCmd(e),
		descendantsCmd(e),
		periodicitiesCmd(e),
	)
	return root
}
