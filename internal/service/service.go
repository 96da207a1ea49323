// Package service contains interface of the feed state store.
package service

import (
	"context"

	"github.com/Decentr-net/seeker/internal/feed"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Store holds the current snapshot and applies intents to it.
type Store interface {
	// Snapshot returns the current snapshot.
	Snapshot() feed.Snapshot
	// Dispatch applies intent and returns the next snapshot.
	// Rejected intents return the current snapshot and feed.ErrValidation or feed.ErrNotFound.
	Dispatch(ctx context.Context, i feed.Intent) (feed.Snapshot, error)
	// RequestTrendingSummary starts summary generation unless a summary is present or pending.
	// The returned channel is closed once the summary (live or fallback) is stored.
	RequestTrendingSummary(ctx context.Context) <-chan struct{}
}
