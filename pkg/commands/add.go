package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/post"
	"tableflip.dev/planner/pkg/printers"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.PostOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Plan a post",
		Example: `
planner add "Spring sale teaser" --platform instagram --type reel --on 2026-9-3
planner add "Changelog thread" -p twitter --at 18:30 --draft
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a post needs a title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := po.GetPlatform()
			if err != nil {
				return err
			}
			typ, err := po.GetType()
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

			svc, err := newService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			p := post.New(strings.Join(args, " "), post.At(when), platform, typ)
			p.Notes = po.Notes
			if po.Draft {
				p.Status = glyph.Draft
			}
			if po.Media != "" {
				uri, err := svc.AttachMedia(ctx, po.Media)
				if err != nil {
					return err
				}
				p.MediaURL = uri
			}

			saved, err := svc.Save(ctx, p)
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.Title("Planned")
			pp.Posts(saved)
			return nil
		},
	}

	options.AddPostArgs(cmd, po)
	options.AddOnArgs(cmd, oo)
	options.AddAtArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
