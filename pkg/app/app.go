package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/planner/pkg/agenda"
	"tableflip.dev/planner/pkg/genai"
	"tableflip.dev/planner/pkg/media"
	"tableflip.dev/planner/pkg/post"
	"tableflip.dev/planner/pkg/store"
)

// Service provides high-level operations over the post collection.
// It wraps the store and the boundary collaborators so the TUI and CLI
// share one code path.
type Service struct {
	Store     store.Store
	Generator genai.Generator
	Config    *store.Config
}

// New wires a Service over the given store and config.
func New(s store.Store, cfg *store.Config) *Service {
	return &Service{Store: s, Config: cfg}
}

// Save validates and persists a post. A post without an id is created and
// the store assigns one; a post with an id replaces the matching entry.
// Validation runs before any mutation, so a failed save writes nothing.
func (s *Service) Save(ctx context.Context, p *post.Post) (*post.Post, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return s.Store.Add(ctx, p)
	}
	if err := s.Store.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Posts returns the current snapshot in insertion order.
func (s *Service) Posts(ctx context.Context) ([]*post.Post, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.List(ctx), nil
}

// Get returns the post with the given id.
func (s *Service) Get(ctx context.Context, id string) (*post.Post, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Get(ctx, id)
}

// On lists the posts scheduled on the same calendar day as date.
func (s *Service) On(ctx context.Context, date time.Time) ([]*post.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.On(posts, date), nil
}

// Upcoming returns the capped, day-grouped upcoming view.
func (s *Service) Upcoming(ctx context.Context, now time.Time) ([]agenda.DayGroup, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.Upcoming(posts, now, s.upcomingLimit()), nil
}

// WithMedia lists posts carrying a media preview for the library view.
func (s *Service) WithMedia(ctx context.Context) ([]*post.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return agenda.WithMedia(posts), nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	return s.Store.Watch(ctx)
}

// GenerateCaption asks the generator for caption text for the post and
// returns the post's notes with the generated text appended after a blank
// line. The store is not touched; the caller decides whether to save.
func (s *Service) GenerateCaption(ctx context.Context, p *post.Post) (string, error) {
	if s.Generator == nil {
		return "", errors.New("app: no caption generator configured")
	}
	if p == nil || p.Title == "" {
		return "", errors.New("app: a title is required before generating a caption")
	}
	text, err := s.Generator.Generate(ctx, genai.Prompt(p.Platform, p.Title))
	if err != nil {
		return "", err
	}
	if p.Notes == "" {
		return text, nil
	}
	return p.Notes + "\n\n" + text, nil
}

// AttachMedia captures a local file as a data URI, applying the
// configured size/type limits.
func (s *Service) AttachMedia(ctx context.Context, path string) (string, error) {
	return media.Capture(path, s.mediaLimits())
}

// GestureThreshold returns the configured pan threshold.
func (s *Service) GestureThreshold() int {
	if s.Config == nil || s.Config.GestureThreshold <= 0 {
		return 200
	}
	return s.Config.GestureThreshold
}

func (s *Service) upcomingLimit() int {
	if s.Config == nil || s.Config.UpcomingLimit <= 0 {
		return agenda.DefaultUpcomingLimit
	}
	return s.Config.UpcomingLimit
}

func (s *Service) mediaLimits() media.Limits {
	if s.Config == nil {
		return media.Limits{}
	}
	return media.Limits{MaxBytes: s.Config.MediaMaxBytes, Types: s.Config.MediaTypes}
}
