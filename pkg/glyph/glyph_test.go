package glyph

import "testing"

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("linkedin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != LinkedIn {
		t.Fatalf("expected linkedin, got %s", p)
	}
	if _, err := ParsePlatform("myspace"); err == nil {
		t.Fatalf("expected error for unknown platform")
	}
}

func TestPlatformsAreClosed(t *testing.T) {
	for _, p := range Platforms() {
		if !p.Valid() {
			t.Fatalf("platform %s should be valid", p)
		}
		if p.Glyph().Meaning != p.String() {
			t.Fatalf("glyph meaning mismatch for %s", p)
		}
	}
	if Platform("facebook").Valid() {
		t.Fatalf("facebook is not part of the closed set")
	}
}

func TestParseContentType(t *testing.T) {
	for _, name := range []string{"post", "reel", "story", "article", "video"} {
		if _, err := ParseContentType(name); err != nil {
			t.Fatalf("expected %s to parse: %v", name, err)
		}
	}
	if _, err := ParseContentType("carousel"); err == nil {
		t.Fatalf("expected error for unknown content type")
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("scheduled")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != Scheduled {
		t.Fatalf("expected scheduled, got %s", s)
	}
	if _, err := ParseStatus("queued"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
