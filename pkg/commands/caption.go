package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/post"
)

func addCaption(topLevel *cobra.Command) {
	po := &options.PostOptions{}

	cmd := &cobra.Command{
		Use:   "caption [title]",
		Short: "Generate a caption for a post topic",
		Long: "Generate an AI caption for the given topic and platform.\n\n" +
			"Requires genai.api_key in .planner.yaml or PLANNER_GENAI_API_KEY.",
		Example: `
planner caption "Spring sale teaser" --platform instagram
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := po.GetPlatform()
			if err != nil {
				return err
			}
			typ, err := po.GetType()
			if err != nil {
				return err
			}

			svc, err := newService()
			if err != nil {
				return err
			}

			p := post.New(strings.Join(args, " "), post.Timestamp{}, platform, typ)
			p.Notes = po.Notes
			notes, err := svc.GenerateCaption(context.Background(), p)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(color.Output, notes)
			return nil
		},
	}

	options.AddPostArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
