package post

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/planner/pkg/glyph"
)

// Post is a planned content item placed on the calendar.
type Post struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"title"`
	Date     Timestamp         `json:"date"`
	Platform glyph.Platform    `json:"platform"`
	Type     glyph.ContentType `json:"type"`
	Status   glyph.Status      `json:"status"`
	Notes    string            `json:"notes,omitempty"`
	MediaURL string            `json:"mediaUrl,omitempty"`
}

// New builds an unsaved post for the given day. The store assigns the id.
func New(title string, on Timestamp, platform glyph.Platform, typ glyph.ContentType) *Post {
	return &Post{
		Title:    title,
		Date:     on,
		Platform: platform,
		Type:     typ,
		Status:   glyph.Scheduled,
	}
}

// Validate reports the first problem that would make the post unsaveable.
// It never mutates the post, so a failed save leaves no partial state.
func (p *Post) Validate() error {
	if p == nil {
		return errors.New("post: nil post")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("post: title is required")
	}
	if p.Date.IsZero() {
		return errors.New("post: date is required")
	}
	if !p.Platform.Valid() {
		return fmt.Errorf("post: unknown platform %q", p.Platform)
	}
	if !p.Type.Valid() {
		return fmt.Errorf("post: unknown content type %q", p.Type)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("post: unknown status %q", p.Status)
	}
	return nil
}

// Clone returns a copy so callers can hand snapshots to views without
// aliasing store-owned memory.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// HasMedia reports whether the post carries a preview reference.
func (p *Post) HasMedia() bool {
	return p.MediaURL != ""
}

// Row returns the columns used by the uitable pretty printer.
func (p *Post) Row() (string, string, string, string) {
	return p.Date.Local().Format("Jan _2 15:04"), p.Platform.Glyph().String() + " " + p.Platform.String(), p.Status.String(), p.Title
}

func (p *Post) String() string {
	return fmt.Sprintf("%s %s  %s", p.Platform.Glyph().String(), p.Date.Local().Format("Jan _2 15:04"), p.Title)
}
