package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/agenda"
	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/post"
)

const weekWidth = len("Mo Tu We Th Fr Sa Su")

// Calendar prints the 6x7 month grid for the month containing on, marking
// days that carry posts, then lists the month's posts day by day.
func (pp *PrettyPrint) Calendar(on time.Time, posts ...*post.Post) {
	year, month := on.Year(), on.Month()
	days := calendar.BuildMonth(year, month, time.Now())

	title := color.New(color.FgWhite, color.Italic)
	label := calendar.MonthLabel(year, month)
	mid := (weekWidth - len(label)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = title.Printf("%s%s\n", strings.Repeat(" ", mid), label)

	head := color.New(color.Faint, color.FgWhite, color.Underline)
	_, _ = head.Println("Mo Tu We Th Fr Sa Su")

	adjacent := color.New(color.Faint)
	pastDay := color.New(color.Faint, color.FgWhite)
	openDay := color.New(color.FgHiWhite)
	busyDay := color.New(color.Bold, color.FgHiWhite)
	todayDay := color.New(color.Bold, color.FgHiCyan, color.Underline)

	for i, d := range days {
		printer := openDay
		switch {
		case !d.IsCurrentMonth:
			printer = adjacent
		case d.IsToday:
			printer = todayDay
		case len(agenda.On(posts, d.Date)) > 0:
			printer = busyDay
		case d.IsPast:
			printer = pastDay
		}
		_, _ = printer.Printf("%2d", d.Date.Day())
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Print("\n")

	for _, d := range days {
		if !d.IsCurrentMonth {
			continue
		}
		onDay := agenda.On(posts, d.Date)
		if len(onDay) == 0 {
			continue
		}
		day := color.New(color.Bold)
		_, _ = day.Printf("%s\n", d.Date.Format("Mon Jan _2"))
		pp.Posts(onDay...)
	}
}

// Upcoming prints the day-grouped upcoming strip.
func (pp *PrettyPrint) Upcoming(groups []agenda.DayGroup, now time.Time) {
	if len(groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("nothing scheduled")
		return
	}

	today := color.New(color.Bold, color.FgHiGreen)
	other := color.New(color.Bold)
	for _, g := range groups {
		if calendar.EpochDay(g.Day) == calendar.EpochDay(now) {
			_, _ = today.Println("Today")
		} else {
			_, _ = other.Println(g.Day.Format("Mon Jan _2"))
		}
		pp.Posts(g.Posts...)
	}
}
