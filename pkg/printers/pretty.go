package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/post"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" post")
	default:
		_, _ = c.Println(" posts")
	}
}

// Posts prints a flat listing, one post per line.
func (pp *PrettyPrint) Posts(posts ...*post.Post) {
	if len(posts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	line := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, p := range posts {
		if pp.ShowID {
			_, _ = id.Printf("%s  ", p.ID)
		}
		_, _ = line.Println(p.String())
	}
	fmt.Println("")
}
