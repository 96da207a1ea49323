// Package effects contains cosmetic side-effects emitted by state transitions.
package effects

import (
	"context"
)

//go:generate mockgen -destination=./mock/effects.go -package=mock -source=effects.go

// Kind ...
type Kind string

const (
	// PostCreatedKind is emitted when the viewer publishes a post.
	PostCreatedKind Kind = "post_created"
	// PostLikedKind is emitted when a post becomes liked by the viewer.
	PostLikedKind Kind = "post_liked"
)

// Celebration ...
type Celebration struct {
	Kind   Kind
	PostID string
}

// Sink receives celebrations.
type Sink interface {
	Celebrate(ctx context.Context, c Celebration)
}

// Channel is a Sink backed by a buffered channel. Celebrations are dropped when the buffer is full.
type Channel struct {
	ch chan Celebration
}

// NewChannel creates new instance of Channel.
func NewChannel(size int) *Channel {
	return &Channel{
		ch: make(chan Celebration, size),
	}
}

// Celebrate ...
func (c *Channel) Celebrate(_ context.Context, v Celebration) {
	select {
	case c.ch <- v:
	default:
	}
}

// C returns channel to read celebrations from.
func (c *Channel) C() <-chan Celebration {
	return c.ch
}

// Discard is a Sink which drops everything.
type Discard struct{}

// Celebrate ...
func (Discard) Celebrate(context.Context, Celebration) {}
