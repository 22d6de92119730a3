package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/post"
	"tableflip.dev/planner/pkg/store"
)

type fakeGenerator struct {
	text string
	err  error
	last string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.last = prompt
	return f.text, f.err
}

func newService() *Service {
	return New(store.NewMemory(), &store.Config{UpcomingLimit: 15, GestureThreshold: 200})
}

func TestSaveCreatesWithoutID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	p := post.New("Launch teaser", post.At(time.Now().Add(24*time.Hour)), glyph.Instagram, glyph.Reel)
	saved, err := svc.Save(ctx, p)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected an assigned id")
	}
}

func TestSaveUpdatesWithID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	saved, _ := svc.Save(ctx, post.New("Original", post.At(time.Now()), glyph.Twitter, glyph.Post))
	edit := saved.Clone()
	edit.Title = "Edited"
	if _, err := svc.Save(ctx, edit); err != nil {
		t.Fatalf("update save: %v", err)
	}

	got, _ := svc.Get(ctx, saved.ID)
	if got.Title != "Edited" {
		t.Fatalf("expected edit to persist, got %q", got.Title)
	}
	all, _ := svc.Posts(ctx)
	if len(all) != 1 {
		t.Fatalf("update must not create a second entry, got %d", len(all))
	}
}

func TestSaveUnknownIDPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	ghost := post.New("Ghost", post.At(time.Now()), glyph.Twitter, glyph.Post)
	ghost.ID = "missing"
	if _, err := svc.Save(ctx, ghost); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveValidatesBeforeMutation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	bad := post.New("", post.At(time.Now()), glyph.Instagram, glyph.Post)
	if _, err := svc.Save(ctx, bad); err == nil {
		t.Fatalf("expected validation error")
	}
	all, _ := svc.Posts(ctx)
	if len(all) != 0 {
		t.Fatalf("failed validation must not write, got %d posts", len(all))
	}
}

func TestGenerateCaptionAppendsWithSeparator(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	gen := &fakeGenerator{text: "Generated ✨ #launch"}
	svc.Generator = gen

	p := post.New("Product teaser", post.At(time.Now()), glyph.Instagram, glyph.Reel)
	p.Notes = "Existing notes."

	got, err := svc.GenerateCaption(ctx, p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Existing notes.\n\nGenerated ✨ #launch" {
		t.Fatalf("expected blank-line append, got %q", got)
	}
	if gen.last == "" {
		t.Fatalf("expected prompt to reach the generator")
	}
}

func TestGenerateCaptionWithEmptyNotes(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	svc.Generator = &fakeGenerator{text: "Solo caption"}

	p := post.New("Teaser", post.At(time.Now()), glyph.TikTok, glyph.Video)
	got, err := svc.GenerateCaption(ctx, p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "Solo caption" {
		t.Fatalf("expected bare caption, got %q", got)
	}
}

func TestGenerateCaptionFailureLeavesStoreAlone(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	svc.Generator = &fakeGenerator{err: errors.New("quota exhausted")}

	saved, _ := svc.Save(ctx, post.New("Teaser", post.At(time.Now()), glyph.Instagram, glyph.Post))
	if _, err := svc.GenerateCaption(ctx, saved); err == nil {
		t.Fatalf("expected generator error to surface")
	}
	got, _ := svc.Get(ctx, saved.ID)
	if got.Notes != "" {
		t.Fatalf("failed generation must not touch the store")
	}
}

func TestGenerateCaptionRequiresTitle(t *testing.T) {
	svc := newService()
	svc.Generator = &fakeGenerator{text: "x"}
	p := &post.Post{}
	if _, err := svc.GenerateCaption(context.Background(), p); err == nil {
		t.Fatalf("expected error without a title")
	}
}

func TestUpcomingUsesConfiguredLimit(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), &store.Config{UpcomingLimit: 2})

	now := time.Now()
	for i := 0; i < 5; i++ {
		_, _ = svc.Save(ctx, post.New("Queued", post.At(now.Add(time.Duration(i+1)*time.Hour)), glyph.Twitter, glyph.Post))
	}
	groups, err := svc.Upcoming(ctx, now)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	total := 0
	for _, g := range groups {
		total += len(g.Posts)
	}
	if total != 2 {
		t.Fatalf("expected configured cap of 2, got %d", total)
	}
}

func TestNoStoreConfigured(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Posts(context.Background()); err == nil {
		t.Fatalf("expected error with no store")
	}
	if _, err := svc.Save(context.Background(), post.New("x", post.At(time.Now()), glyph.Twitter, glyph.Post)); err == nil {
		t.Fatalf("expected error with no store")
	}
}
