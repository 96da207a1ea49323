// Package feed contains the client state model: snapshot of all entity collections and
// pure transitions applied to it.
package feed

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Decentr-net/seeker/internal/entities"
)

// ErrValidation returned when submitted text is empty after trimming.
var ErrValidation = errors.New("validation rejection")

// ErrNotFound returned when intent targets an id absent from the collection.
var ErrNotFound = errors.New("not found")

// Env provides non-deterministic inputs of transitions.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv returns Env which uses wall clock and random uuids.
func DefaultEnv() Env {
	return Env{
		Now:   time.Now,
		NewID: uuid.NewString,
	}
}

// LikeState is view-local like state of one post.
type LikeState struct {
	Liked bool
	Count int
}

// Snapshot is the complete state at one instant. Snapshots are never mutated in place.
type Snapshot struct {
	User        entities.UserProfile
	Posts       []entities.Post
	Likes       map[string]LikeState
	Chats       []entities.Chat
	Messages    map[string][]entities.Message
	Communities []entities.Community

	Summary         string
	Generating      bool
	WalletConnected bool

	Nav Navigation
}

// PostIndex returns index of the post or -1.
func (s Snapshot) PostIndex(id string) int {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return i
		}
	}
	return -1
}

// Post returns post by id.
func (s Snapshot) Post(id string) (entities.Post, bool) {
	if i := s.PostIndex(id); i >= 0 {
		return s.Posts[i], true
	}
	return entities.Post{}, false
}

// ChatIndex returns index of the chat or -1.
func (s Snapshot) ChatIndex(id string) int {
	for i := range s.Chats {
		if s.Chats[i].ID == id {
			return i
		}
	}
	return -1
}

// CommunityIndex returns index of the community or -1.
func (s Snapshot) CommunityIndex(id string) int {
	for i := range s.Communities {
		if s.Communities[i].ID == id {
			return i
		}
	}
	return -1
}

// IsLiked reports whether the viewer liked the post.
func (s Snapshot) IsLiked(postID string) bool {
	return s.Likes[postID].Liked
}

// LikeCount returns displayed like counter of the post.
func (s Snapshot) LikeCount(postID string) int {
	if v, ok := s.Likes[postID]; ok {
		return v.Count
	}
	if p, ok := s.Post(postID); ok {
		return p.Likes
	}
	return 0
}

// ThreadPost returns the post of the open thread.
func (s Snapshot) ThreadPost() (entities.Post, bool) {
	if s.Nav.ThreadPostID == "" {
		return entities.Post{}, false
	}
	return s.Post(s.Nav.ThreadPostID)
}

// Conversation returns the open chat with its messages.
func (s Snapshot) Conversation() (entities.Chat, []entities.Message, bool) {
	if s.Nav.ChatID == "" {
		return entities.Chat{}, nil, false
	}
	i := s.ChatIndex(s.Nav.ChatID)
	if i < 0 {
		return entities.Chat{}, nil, false
	}
	return s.Chats[i], s.Messages[s.Nav.ChatID], true
}
