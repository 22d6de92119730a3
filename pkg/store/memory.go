package store

import (
	"context"
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"tableflip.dev/planner/pkg/post"
)

const idLength = 9

// NewMemory returns an in-memory Store. Nothing is ever written to disk;
// the collection lives and dies with the process.
func NewMemory() Store {
	return &memory{}
}

type memory struct {
	mu       sync.Mutex
	posts    []*post.Post
	watchers []chan Event
}

func (m *memory) Add(ctx context.Context, draft *post.Post) (*post.Post, error) {
	if draft == nil {
		return nil, fmt.Errorf("store: nil post")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p := draft.Clone()
	id, err := m.freshID()
	if err != nil {
		return nil, err
	}
	p.ID = id
	m.posts = append(m.posts, p)
	m.notify(Event{Type: EventAdded, ID: p.ID})
	return p.Clone(), nil
}

func (m *memory) Update(ctx context.Context, p *post.Post) error {
	if p == nil || p.ID == "" {
		return ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.posts {
		if existing.ID == p.ID {
			replacement := p.Clone()
			replacement.ID = existing.ID
			m.posts[i] = replacement
			m.notify(Event{Type: EventUpdated, ID: p.ID})
			return nil
		}
	}
	return ErrNotFound
}

func (m *memory) Get(ctx context.Context, id string) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memory) List(ctx context.Context) []*post.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*post.Post, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, p.Clone())
	}
	return out
}

// Watch streams change events until ctx is cancelled. Events are dropped
// rather than blocking a mutation when a consumer falls behind; views
// refresh from the snapshot anyway.
func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// freshID generates a nanoid not already present in the collection. The
// retry loop guards the (vanishingly rare) collision on repeated adds.
func (m *memory) freshID() (string, error) {
	for {
		id, err := gonanoid.New(idLength)
		if err != nil {
			return "", fmt.Errorf("store: generate id: %w", err)
		}
		if !m.hasID(id) {
			return id, nil
		}
	}
}

func (m *memory) hasID(id string) bool {
	for _, p := range m.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *memory) notify(ev Event) {
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
