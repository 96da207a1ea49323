package effects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannel_Celebrate(t *testing.T) {
	c := NewChannel(1)

	c.Celebrate(context.Background(), Celebration{Kind: PostLikedKind, PostID: "1"})
	c.Celebrate(context.Background(), Celebration{Kind: PostLikedKind, PostID: "2"}) // dropped, must not block

	require.Equal(t, Celebration{Kind: PostLikedKind, PostID: "1"}, <-c.C())

	select {
	case v := <-c.C():
		t.Fatalf("unexpected celebration %v", v)
	default:
	}
}
