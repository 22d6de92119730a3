package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/planner/pkg/glyph"
)

// PostOptions
type PostOptions struct {
	PlatformString string
	TypeString     string
	Notes          string
	Media          string
	Draft          bool
}

func AddPostArgs(cmd *cobra.Command, o *PostOptions) {
	cmd.Flags().StringVarP(&o.PlatformString, "platform", "p", string(glyph.Instagram),
		"Target platform, one of: "+joinPlatforms()+".")
	cmd.Flags().StringVarP(&o.TypeString, "type", "t", string(glyph.Post),
		"Content format, one of: "+joinTypes()+".")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Caption or working notes for the post.")
	cmd.Flags().StringVar(&o.Media, "media", "",
		"Path to an image or video to attach.")
	cmd.Flags().BoolVar(&o.Draft, "draft", false,
		"Keep the post as a draft instead of scheduling it.")
}

func (o *PostOptions) GetPlatform() (glyph.Platform, error) {
	return glyph.ParsePlatform(strings.ToLower(o.PlatformString))
}

func (o *PostOptions) GetType() (glyph.ContentType, error) {
	return glyph.ParseContentType(strings.ToLower(o.TypeString))
}

func joinPlatforms() string {
	names := make([]string, 0, len(glyph.Platforms()))
	for _, p := range glyph.Platforms() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func joinTypes() string {
	names := make([]string, 0, len(glyph.ContentTypes()))
	for _, t := range glyph.ContentTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
