// Package store owns the post collection and its change notifications.
package store

import (
	"context"
	"errors"

	"tableflip.dev/planner/pkg/post"
)

// ErrNotFound is returned by Update when no post carries the given id.
// An update against an unknown id must surface, never silently no-op.
var ErrNotFound = errors.New("store: post not found")

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventAdded indicates a new post was appended to the collection.
	EventAdded EventType = iota

	// EventUpdated indicates an existing post was replaced in place.
	EventUpdated
)

// Event is emitted by Store.Watch when the collection changes. Views
// re-read the snapshot on receipt; there is no hidden reactivity.
type Event struct {
	Type EventType
	ID   string
}

// Store defines the post collection contract. Implementations keep
// insertion order stable for all queries and never expose a delete.
type Store interface {
	// Add assigns a fresh unique id to the draft and appends it.
	Add(ctx context.Context, draft *post.Post) (*post.Post, error)

	// Update replaces the post whose id matches, or returns ErrNotFound.
	Update(ctx context.Context, p *post.Post) error

	// Get returns the post with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*post.Post, error)

	// List returns a snapshot of all posts in insertion order.
	List(ctx context.Context) []*post.Post

	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
