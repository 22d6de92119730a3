package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/printers"
)

func addCalendar(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "print the month grid",
		Example: `
planner calendar
planner cal --on 2026-9-1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			when := time.Now()
			if on != nil {
				when = *on
			}

			posts, err := svc.Posts(context.Background())
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Calendar(when, posts...)
			return nil
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
