package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/post"
	"tableflip.dev/planner/pkg/printers"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	out := &options.OutputOptions{}
	po := &options.PostOptions{}

	long := strings.Builder{}
	long.WriteString("Get planned posts, optionally filtered to a day or platform.\n\n")
	long.WriteString("Platforms:\n")
	for _, p := range glyph.Platforms() {
		g := p.Glyph()
		long.WriteString(fmt.Sprintf("%s %s\n", g.Symbol, g.Meaning))
	}

	cmd := &cobra.Command{
		Use:   "get [platform]",
		Short: "get planned posts",
		Long:  long.String(),
		Example: `
planner get
planner get instagram
planner get --on 2026-9-3
planner get --media
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return nil
			}
			var err error
			po.PlatformString = args[0]
			_, err = po.GetPlatform()
			return err
		},
		ValidArgs: validPlatformArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			ctx := context.Background()
			var posts []*post.Post

			mediaOnly, _ := cmd.Flags().GetBool("media")
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			switch {
			case mediaOnly:
				posts, err = svc.WithMedia(ctx)
			case on != nil:
				posts, err = svc.On(ctx, *on)
			default:
				posts, err = svc.Posts(ctx)
			}
			if err != nil {
				return out.HandleError(err)
			}

			if len(args) > 0 {
				platform, _ := po.GetPlatform()
				filtered := posts[:0:0]
				for _, p := range posts {
					if p.Platform == platform {
						filtered = append(filtered, p)
					}
				}
				posts = filtered
			}

			if out.JSON {
				b, err := json.MarshalIndent(posts, "", "  ")
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			switch {
			case on != nil:
				pp := printers.PrettyPrint{ShowID: io.ShowID}
				pp.Title(on.Format("Mon Jan _2 2006"))
				pp.Posts(posts...)
			case mediaOnly:
				pp := printers.PrettyPrint{ShowID: io.ShowID}
				pp.TitleWithCount("Posts with media", len(posts))
				pp.Posts(posts...)
			default:
				post.PrettyPrint("Planned posts", posts...)
			}
			return nil
		},
	}

	cmd.Flags().Bool("media", false, "Only posts with attached media.")
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, out)

	topLevel.AddCommand(cmd)
}

func validPlatformArgs() []string {
	names := make([]string, 0, len(glyph.Platforms()))
	for _, p := range glyph.Platforms() {
		names = append(names, string(p))
	}
	return names
}
