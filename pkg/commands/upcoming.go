package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/printers"
)

func addUpcoming(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "posts due today or later, grouped by day",
		Example: `
planner upcoming
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			now := time.Now()
			groups, err := svc.Upcoming(context.Background(), now)
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Title("Upcoming")
			pp.Upcoming(groups, now)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
