package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/seeker/internal/feed"
	"github.com/Decentr-net/seeker/internal/seed"
	"github.com/Decentr-net/seeker/internal/service"
	"github.com/Decentr-net/seeker/internal/service/impl"
	servicemock "github.com/Decentr-net/seeker/internal/service/mock"
	"github.com/Decentr-net/seeker/internal/summary"
	summarymock "github.com/Decentr-net/seeker/internal/summary/mock"
)

var now = time.Unix(1772366400, 0).UTC()

func testEnv() feed.Env {
	var (
		mu sync.Mutex
		n  int
	)
	return feed.Env{
		Now: func() time.Time { return now },
		NewID: func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id%d", n)
		},
	}
}

func newRouter(s service.Store) chi.Router {
	r := chi.NewRouter()
	SetupRouter(s, r, time.Second)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, Snapshot) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var snap Snapshot
	if w.Code == http.StatusOK || w.Code == http.StatusAccepted {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	}

	return w, snap
}

func TestServer_Flow(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := newRouter(impl.New(seed.Snapshot(now), summarymock.NewMockGenerator(ctrl), impl.WithEnv(testEnv())))

	w, snap := do(t, r, http.MethodGet, "/v1/snapshot", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, snap.Posts, 3)
	require.Equal(t, "home", snap.Navigation.Screen)

	w, snap = do(t, r, http.MethodPost, "/v1/posts", `{"text":"gm"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, snap.Posts, 4)
	assert.Equal(t, Post{
		ID: "id1",
		Author: Author{
			Name:           "bughacker",
			Handle:         "bughacker.skr",
			Avatar:         "https://picsum.photos/seed/bughacker/200/200",
			Verified:       true,
			HardwareSigned: true,
			Address:        "Saga...4x9p",
		},
		Content:   "gm",
		CreatedAt: now.Unix(),
	}, snap.Posts[0])

	w, snap = do(t, r, http.MethodPost, "/v1/posts/3/like", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, snap.Posts[3].Liked)
	assert.Equal(t, 1241, snap.Posts[3].Likes)

	w, snap = do(t, r, http.MethodPut, "/v1/thread/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "thread", snap.Navigation.Screen)
	require.Equal(t, "home", snap.Navigation.Active)

	w, snap = do(t, r, http.MethodPost, "/v1/posts/1/comments", `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, snap.Thread)
	assert.Equal(t, 2, snap.Thread.Replies)
	assert.Equal(t, "hello", snap.Thread.Comments[0].Content)

	w, snap = do(t, r, http.MethodPut, "/v1/navigation", `{"view":"messages"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, snap.Thread)
	require.Equal(t, "messages", snap.Navigation.Screen)

	w, _ = do(t, r, http.MethodPut, "/v1/conversation/c1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w, snap = do(t, r, http.MethodPost, "/v1/chats/c1/messages", `{"text":"ok"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, snap.Conversation)
	assert.Len(t, snap.Conversation.Messages, 4)
	assert.Equal(t, "ok", snap.Chats[0].LastMessage)
	assert.Equal(t, "[Locked Transmission]", snap.Chats[1].LastMessage)

	w, snap = do(t, r, http.MethodDelete, "/v1/conversation", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, snap.Conversation)

	w, snap = do(t, r, http.MethodPut, "/v1/overlays/edit_profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, snap.Navigation.EditingProfile)

	w, snap = do(t, r, http.MethodPut, "/v1/profile", `{"name":"toly","bio":"gm"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "toly", snap.User.Name)
	assert.Equal(t, "gm", snap.User.Bio)
	assert.Equal(t, "bughacker.skr", snap.User.Handle)
	assert.False(t, snap.Navigation.EditingProfile)

	w, snap = do(t, r, http.MethodPost, "/v1/communities/com2/membership", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, snap.Communities[1].Joined)
	assert.Equal(t, 45201, snap.Communities[1].Members)

	w, snap = do(t, r, http.MethodPost, "/v1/wallet", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, snap.WalletConnected)
}

func TestServer_Rejections(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := newRouter(impl.New(seed.Snapshot(now), summarymock.NewMockGenerator(ctrl), impl.WithEnv(testEnv())))

	tt := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{name: "blank_post", method: http.MethodPost, path: "/v1/posts", body: `{"text":"  "}`, code: http.StatusUnprocessableEntity},
		{name: "malformed_post", method: http.MethodPost, path: "/v1/posts", body: `{`, code: http.StatusBadRequest},
		{name: "blank_comment", method: http.MethodPost, path: "/v1/posts/1/comments", body: `{"text":""}`, code: http.StatusUnprocessableEntity},
		{name: "unknown_post_comment", method: http.MethodPost, path: "/v1/posts/9/comments", body: `{"text":"hi"}`, code: http.StatusNotFound},
		{name: "unknown_post_like", method: http.MethodPost, path: "/v1/posts/9/like", code: http.StatusNotFound},
		{name: "blank_message", method: http.MethodPost, path: "/v1/chats/c1/messages", body: `{"text":"\n"}`, code: http.StatusUnprocessableEntity},
		{name: "unknown_chat", method: http.MethodPost, path: "/v1/chats/c9/messages", body: `{"text":"hi"}`, code: http.StatusNotFound},
		{name: "unknown_community", method: http.MethodPost, path: "/v1/communities/com9/membership", code: http.StatusNotFound},
		{name: "unknown_view", method: http.MethodPut, path: "/v1/navigation", body: `{"view":"settings"}`, code: http.StatusBadRequest},
		{name: "unknown_overlay", method: http.MethodPut, path: "/v1/overlays/wallet", code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			w, _ := do(t, r, tc.method, tc.path, tc.body)
			require.Equal(t, tc.code, w.Code)

			var e Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
			require.NotEmpty(t, e.Error)
		})
	}

	_, snap := do(t, r, http.MethodGet, "/v1/snapshot", "")
	require.Len(t, snap.Posts, 3)
	require.Equal(t, 1, snap.Posts[0].Replies)
	require.Equal(t, "[Locked Transmission]", snap.Chats[0].LastMessage)
}

func TestServer_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := servicemock.NewMockStore(ctrl)
	s.EXPECT().Dispatch(gomock.Any(), feed.ToggleWallet{}).Return(feed.Snapshot{}, errors.New("test"))

	w, _ := do(t, newRouter(s), http.MethodPost, "/v1/wallet", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestServer_RequestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)

	release := make(chan struct{})

	g := summarymock.NewMockGenerator(ctrl)
	g.EXPECT().Generate(gomock.Any(), summary.Prompt).DoAndReturn(func(context.Context, string) (string, error) {
		<-release
		return "", errors.New("unauthenticated")
	})

	s := impl.New(seed.Snapshot(now), g, impl.WithEnv(testEnv()))
	r := newRouter(s)

	w, snap := do(t, r, http.MethodPost, "/v1/summary", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	require.True(t, snap.Generating)
	require.Empty(t, snap.Summary)

	close(release)
	select {
	case <-s.RequestTrendingSummary(context.Background()):
	case <-time.After(5 * time.Second):
		t.Fatal("summary is not resolved")
	}

	w, snap = do(t, r, http.MethodPost, "/v1/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, snap.Generating)
	require.Equal(t, summary.Fallback, snap.Summary)
}

func TestServer_Static(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := newRouter(servicemock.NewMockStore(ctrl))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/trending", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var trends []Trend
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trends))
	require.Len(t, trends, 4)
	require.Equal(t, Trend{Tag: "#SolanaSummer", Posts: "12.5K", Category: "Trending"}, trends[0])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stories", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var stories []Story
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stories))
	require.Len(t, stories, 5)
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := servicemock.NewMockStore(ctrl)
	s.EXPECT().Snapshot().Return(seed.Snapshot(now))

	w := httptest.NewRecorder()
	HealthHandler(time.Second, StorePinger(s))(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"version": "dev",
		"commit": "undefined",
		"meta": {"store": {"posts": 3, "chats": 2, "communities": 3, "generating": false}},
		"errors": {}
	}`, w.Body.String())
}

type chanPinger struct{}

func (chanPinger) Ping(context.Context) (interface{}, error) {
	return make(chan int), nil
}

func (chanPinger) Name() string {
	return "chan"
}

func TestHealthHandler_UnencodableMeta(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(time.Second, chanPinger{})(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, w.Body.String())
}
