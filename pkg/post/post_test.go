package post

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/glyph"
)

func TestValidateRequiresTitle(t *testing.T) {
	p := New("  ", At(time.Now()), glyph.Instagram, glyph.Reel)
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for blank title")
	}
}

func TestValidateRejectsUnknownEnums(t *testing.T) {
	p := New("Launch teaser", At(time.Now()), glyph.Instagram, glyph.Reel)
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Platform = glyph.Platform("friendster")
	if err := p.Validate(); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

func TestTimestampSameDay(t *testing.T) {
	ts := At(time.Date(2024, time.March, 15, 23, 59, 0, 0, time.Local))
	if !ts.SameDay(time.Date(2024, time.March, 15, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("expected same day for different times on March 15")
	}
	if ts.SameDay(time.Date(2024, time.March, 16, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("expected different day for March 16")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	in := New("Weekly digest", At(time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)), glyph.LinkedIn, glyph.Article)
	in.Status = glyph.Draft

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := &Post{}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Date.Equal(in.Date.Time) {
		t.Fatalf("expected %v, got %v", in.Date, out.Date)
	}
	if out.Platform != glyph.LinkedIn || out.Status != glyph.Draft {
		t.Fatalf("enums did not survive round trip: %+v", out)
	}
}
