package post

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/glyph"
)

// PrettyPrint writes a table of posts to the terminal.
func PrettyPrint(title string, posts ...*Post) {
	if len(posts) == 0 {
		return
	}

	fmt.Println(glyph.Underline(glyph.Bold(title)))

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, p := range posts {
		tbl.AddRow(p.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
