package feed

import (
	"fmt"
	"strings"

	"github.com/Decentr-net/seeker/internal/effects"
	"github.com/Decentr-net/seeker/internal/entities"
)

// Outcome holds side-effects requested by a transition.
type Outcome struct {
	Celebrations   []effects.Celebration
	RequestSummary bool
}

// Reduce applies intent to the snapshot and returns the next snapshot.
// On error the input snapshot is returned untouched.
// nolint: gocyclo
func Reduce(s Snapshot, i Intent, env Env) (Snapshot, Outcome, error) {
	var (
		next Snapshot
		out  Outcome
		err  error
	)

	switch i := i.(type) {
	case CreatePost:
		next, out, err = createPost(s, i, env)
	case ToggleLike:
		next, out, err = toggleLike(s, i)
	case AddComment:
		next, err = addComment(s, i, env)
	case SendMessage:
		next, err = sendMessage(s, i, env)
	case UpdateProfile:
		next = s
		next.User.Name, next.User.Bio = i.Name, i.Bio
		next.Nav.EditingProfile = false
	case ToggleCommunityMembership:
		next, err = toggleMembership(s, i)
	case ToggleWallet:
		next = s
		next.WalletConnected = !s.WalletConnected
	case Navigate:
		next, out, err = navigate(s, i)
	case OpenThread:
		if s.PostIndex(i.PostID) < 0 {
			return s, Outcome{}, fmt.Errorf("%w: post %s", ErrNotFound, i.PostID)
		}
		next = s
		next.Nav.ThreadPostID = i.PostID
	case CloseThread:
		next = s
		next.Nav.ThreadPostID = ""
	case OpenChat:
		if s.ChatIndex(i.ChatID) < 0 {
			return s, Outcome{}, fmt.Errorf("%w: chat %s", ErrNotFound, i.ChatID)
		}
		next = s
		next.Nav.ChatID = i.ChatID
	case CloseChat:
		next = s
		next.Nav.ChatID = ""
	case OpenOverlay:
		next = s
		next.Nav = s.Nav.withOverlay(i.Overlay, true)
	case CloseOverlay:
		next = s
		next.Nav = s.Nav.withOverlay(i.Overlay, false)
	default:
		return s, Outcome{}, fmt.Errorf("%w: unknown intent %T", ErrValidation, i)
	}

	if err != nil {
		return s, Outcome{}, err
	}

	return next, out, nil
}

// Replay applies intents one by one. Rejected intents leave the snapshot as is.
func Replay(s Snapshot, env Env, intents ...Intent) (Snapshot, []error) {
	errs := make([]error, len(intents))
	for k, i := range intents {
		s, _, errs[k] = Reduce(s, i, env)
	}
	return s, errs
}

// BeginSummary marks summary generation as pending.
// Only the store owning the pending request may call it.
func BeginSummary(s Snapshot) Snapshot {
	s.Generating = true
	return s
}

// ResolveSummary stores generated (or fallback) summary and clears the pending flag.
func ResolveSummary(s Snapshot, text string) Snapshot {
	s.Summary = text
	s.Generating = false
	return s
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func createPost(s Snapshot, i CreatePost, env Env) (Snapshot, Outcome, error) {
	if isBlank(i.Text) {
		return s, Outcome{}, fmt.Errorf("%w: empty post", ErrValidation)
	}

	p := entities.Post{
		ID:        env.NewID(),
		Author:    entities.AuthorFromProfile(s.User),
		Content:   i.Text,
		CreatedAt: env.Now(),
	}

	posts := make([]entities.Post, 0, len(s.Posts)+1)
	posts = append(posts, p)
	posts = append(posts, s.Posts...)

	s.Posts = posts
	s.Nav.CreatingPost = false

	return s, Outcome{
		Celebrations: []effects.Celebration{{Kind: effects.PostCreatedKind, PostID: p.ID}},
	}, nil
}

func toggleLike(s Snapshot, i ToggleLike) (Snapshot, Outcome, error) {
	idx := s.PostIndex(i.PostID)
	if idx < 0 {
		return s, Outcome{}, fmt.Errorf("%w: post %s", ErrNotFound, i.PostID)
	}

	cur, ok := s.Likes[i.PostID]
	if !ok {
		cur = LikeState{Count: s.Posts[idx].Likes}
	}

	var out Outcome
	if cur.Liked {
		cur = LikeState{Liked: false, Count: cur.Count - 1}
	} else {
		cur = LikeState{Liked: true, Count: cur.Count + 1}
		out.Celebrations = []effects.Celebration{{Kind: effects.PostLikedKind, PostID: i.PostID}}
	}

	likes := make(map[string]LikeState, len(s.Likes)+1)
	for k, v := range s.Likes {
		likes[k] = v
	}
	likes[i.PostID] = cur
	s.Likes = likes

	return s, out, nil
}

func addComment(s Snapshot, i AddComment, env Env) (Snapshot, error) {
	if isBlank(i.Text) {
		return s, fmt.Errorf("%w: empty comment", ErrValidation)
	}

	idx := s.PostIndex(i.PostID)
	if idx < 0 {
		return s, fmt.Errorf("%w: post %s", ErrNotFound, i.PostID)
	}

	author := entities.AuthorFromProfile(s.User)
	author.Address = ""

	c := entities.Comment{
		ID:        env.NewID(),
		Author:    author,
		Content:   i.Text,
		CreatedAt: env.Now(),
	}

	p := s.Posts[idx]
	comments := make([]entities.Comment, 0, len(p.Comments)+1)
	comments = append(comments, c)
	p.Comments = append(comments, p.Comments...)
	p.Replies++

	posts := make([]entities.Post, len(s.Posts))
	copy(posts, s.Posts)
	posts[idx] = p
	s.Posts = posts

	return s, nil
}

func sendMessage(s Snapshot, i SendMessage, env Env) (Snapshot, error) {
	if isBlank(i.Text) {
		return s, fmt.Errorf("%w: empty message", ErrValidation)
	}

	idx := s.ChatIndex(i.ChatID)
	if idx < 0 {
		return s, fmt.Errorf("%w: chat %s", ErrNotFound, i.ChatID)
	}

	m := entities.Message{
		ID:       env.NewID(),
		SenderID: entities.LocalUserID,
		Text:     i.Text,
		SentAt:   env.Now(),
	}

	prev := s.Messages[i.ChatID]
	seq := make([]entities.Message, len(prev), len(prev)+1)
	copy(seq, prev)
	seq = append(seq, m)

	messages := make(map[string][]entities.Message, len(s.Messages)+1)
	for k, v := range s.Messages {
		messages[k] = v
	}
	messages[i.ChatID] = seq
	s.Messages = messages

	// chat keeps its position in the list
	chats := make([]entities.Chat, len(s.Chats))
	copy(chats, s.Chats)
	chats[idx].LastMessage = m.Text
	chats[idx].UpdatedAt = m.SentAt
	s.Chats = chats

	return s, nil
}

func toggleMembership(s Snapshot, i ToggleCommunityMembership) (Snapshot, error) {
	idx := s.CommunityIndex(i.CommunityID)
	if idx < 0 {
		return s, fmt.Errorf("%w: community %s", ErrNotFound, i.CommunityID)
	}

	communities := make([]entities.Community, len(s.Communities))
	copy(communities, s.Communities)

	c := &communities[idx]
	if c.Joined {
		c.Members--
	} else {
		c.Members++
	}
	c.Joined = !c.Joined

	s.Communities = communities

	return s, nil
}

func navigate(s Snapshot, i Navigate) (Snapshot, Outcome, error) {
	if _, err := ParseView(string(i.View)); err != nil {
		return s, Outcome{}, err
	}

	s.Nav.Active = i.View
	s.Nav.ThreadPostID = ""
	s.Nav.ChatID = ""

	var out Outcome
	if i.View == ExploreView && s.Summary == "" && !s.Generating {
		out.RequestSummary = true
	}

	return s, out, nil
}
