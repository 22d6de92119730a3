// Package agenda provides read-only views over a snapshot of posts.
package agenda

import (
	"sort"
	"time"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/post"
)

// DefaultUpcomingLimit caps the upcoming strip at the next 15 posts.
const DefaultUpcomingLimit = 15

// DayGroup is one day's worth of upcoming posts. Day is midnight of the
// calendar day; labels are a presentation concern.
type DayGroup struct {
	Day   time.Time
	Posts []*post.Post
}

// On returns every post scheduled on the same calendar day as date, in
// store order. No cap is applied here; the caller truncates for display
// and computes the remainder from the full slice.
func On(posts []*post.Post, date time.Time) []*post.Post {
	var out []*post.Post
	for _, p := range posts {
		if p.Date.SameDay(date) {
			out = append(out, p)
		}
	}
	return out
}

// Upcoming returns posts from today onward, ascending by date, truncated
// to limit and grouped by calendar day in order of first appearance.
//
// Inclusion is by calendar day, not timestamp: a post earlier today is
// still upcoming even if its moment has passed. Grouping is keyed by the
// civil day number so identical month/day labels in different years never
// merge.
func Upcoming(posts []*post.Post, now time.Time, limit int) []DayGroup {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	startOfToday := calendar.StartOfDay(now)

	upcoming := make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Date.Local().Before(startOfToday) {
			upcoming = append(upcoming, p)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date.Time)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	var groups []DayGroup
	index := make(map[int]int, len(upcoming))
	for _, p := range upcoming {
		key := calendar.EpochDay(p.Date.Local())
		if at, ok := index[key]; ok {
			groups[at].Posts = append(groups[at].Posts, p)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, DayGroup{Day: p.Date.StartOfDay(), Posts: []*post.Post{p}})
	}
	return groups
}

// WithMedia returns posts carrying a media preview, in store order. Feeds
// the media library view.
func WithMedia(posts []*post.Post) []*post.Post {
	var out []*post.Post
	for _, p := range posts {
		if p.HasMedia() {
			out = append(out, p)
		}
	}
	return out
}
