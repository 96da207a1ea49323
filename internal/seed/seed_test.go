package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/seeker/internal/feed"
)

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	s := Snapshot(now)

	require.Len(t, s.Posts, 3)
	require.Len(t, s.Chats, 2)
	require.Len(t, s.Communities, 3)
	require.Equal(t, feed.HomeView, s.Nav.Active)
	require.Empty(t, s.Summary)

	for _, p := range s.Posts {
		if p.Comments != nil {
			require.Equal(t, len(p.Comments), p.Replies, p.ID)
		}
	}

	for _, c := range s.Chats {
		msgs := s.Messages[c.ID]
		for i := 1; i < len(msgs); i++ {
			require.True(t, msgs[i-1].SentAt.Before(msgs[i].SentAt), "messages are oldest first")
		}
	}

	require.Equal(t, now.Add(-time.Hour), s.Chats[0].UpdatedAt)
	require.True(t, s.Communities[0].Joined)
	require.False(t, s.Communities[1].Joined)
}

func TestSnapshot_Isolated(t *testing.T) {
	now := time.Now()

	a, b := Snapshot(now), Snapshot(now)
	a.Posts[0].Content = "changed"
	a.User.NFTs[0] = "changed"

	require.NotEqual(t, a.Posts[0].Content, b.Posts[0].Content)
	require.NotEqual(t, a.User.NFTs[0], b.User.NFTs[0])
}
