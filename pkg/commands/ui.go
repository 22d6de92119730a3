package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the planning calendar",
		Example: `
planner ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return ui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
