package server

import (
	"github.com/Decentr-net/seeker/internal/entities"
	"github.com/Decentr-net/seeker/internal/feed"
)

// Error ...
type Error struct {
	Error string `json:"error"`
}

// TextRequest is a body of post, comment and message submissions.
type TextRequest struct {
	Text string `json:"text"`
}

// UpdateProfileRequest ...
type UpdateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// NavigateRequest ...
type NavigateRequest struct {
	View string `json:"view"`
}

// Snapshot ...
type Snapshot struct {
	User            Profile     `json:"user"`
	Posts           []Post      `json:"posts"`
	Chats           []Chat      `json:"chats"`
	Communities     []Community `json:"communities"`
	Summary         string      `json:"summary,omitempty"`
	Generating      bool        `json:"generating"`
	WalletConnected bool        `json:"walletConnected"`
	Navigation      Navigation  `json:"navigation"`
	// Thread is the post of the open thread.
	Thread *Post `json:"thread,omitempty"`
	// Conversation is the open chat with its messages.
	Conversation *Conversation `json:"conversation,omitempty"`
}

// Profile ...
type Profile struct {
	Name      string   `json:"name"`
	Handle    string   `json:"handle"`
	Address   string   `json:"address"`
	Avatar    string   `json:"avatar"`
	Bio       string   `json:"bio"`
	Followers int      `json:"followers"`
	Following int      `json:"following"`
	NFTs      []string `json:"nfts"`
}

// Author ...
type Author struct {
	Name           string `json:"name"`
	Handle         string `json:"handle"`
	Avatar         string `json:"avatar"`
	Verified       bool   `json:"isVerified"`
	HardwareSigned bool   `json:"isHardwareSigned,omitempty"`
	Address        string `json:"address,omitempty"`
}

// Post ...
type Post struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt int64     `json:"createdAt"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Reposts   int       `json:"reposts"`
	Replies   int       `json:"replies"`
	Tips      float64   `json:"tips"`
	Image     string    `json:"image,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	Author    Author `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	Likes     int    `json:"likes"`
}

// Participant ...
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar"`
	Verified bool   `json:"isVerified"`
}

// Chat ...
type Chat struct {
	ID          string      `json:"id"`
	Participant Participant `json:"participant"`
	LastMessage string      `json:"lastMessage"`
	UpdatedAt   int64       `json:"updatedAt"`
	Unread      bool        `json:"unread,omitempty"`
}

// Message ...
type Message struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
	SentAt   int64  `json:"sentAt"`
}

// Conversation ...
type Conversation struct {
	Chat     Chat      `json:"chat"`
	Messages []Message `json:"messages"`
}

// Community ...
type Community struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	Avatar      string `json:"avatar"`
	Banner      string `json:"banner"`
	Joined      bool   `json:"isJoined"`
}

// Navigation ...
type Navigation struct {
	Screen         string `json:"screen"`
	Active         string `json:"active"`
	CreatingPost   bool   `json:"creatingPost"`
	EditingProfile bool   `json:"editingProfile"`
}

// Trend ...
type Trend struct {
	Tag      string `json:"tag"`
	Posts    string `json:"posts"`
	Category string `json:"category"`
}

// Story ...
type Story struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Active bool   `json:"active"`
}

func toAPISnapshot(s feed.Snapshot) Snapshot {
	out := Snapshot{
		User:            toAPIProfile(s.User),
		Posts:           make([]Post, len(s.Posts)),
		Chats:           make([]Chat, len(s.Chats)),
		Communities:     make([]Community, len(s.Communities)),
		Summary:         s.Summary,
		Generating:      s.Generating,
		WalletConnected: s.WalletConnected,
		Navigation: Navigation{
			Screen:         string(s.Nav.Screen()),
			Active:         string(s.Nav.Active),
			CreatingPost:   s.Nav.CreatingPost,
			EditingProfile: s.Nav.EditingProfile,
		},
	}

	for i, v := range s.Posts {
		out.Posts[i] = toAPIPost(s, v)
	}

	for i, v := range s.Chats {
		out.Chats[i] = toAPIChat(v)
	}

	for i, v := range s.Communities {
		out.Communities[i] = toAPICommunity(v)
	}

	if p, ok := s.ThreadPost(); ok {
		v := toAPIPost(s, p)
		out.Thread = &v
	}

	if c, msgs, ok := s.Conversation(); ok {
		v := Conversation{
			Chat:     toAPIChat(c),
			Messages: make([]Message, len(msgs)),
		}
		for i, m := range msgs {
			v.Messages[i] = Message{
				ID:       m.ID,
				SenderID: m.SenderID,
				Text:     m.Text,
				SentAt:   m.SentAt.Unix(),
			}
		}
		out.Conversation = &v
	}

	return out
}

func toAPIProfile(p entities.UserProfile) Profile {
	return Profile{
		Name:      p.Name,
		Handle:    p.Handle,
		Address:   p.Address,
		Avatar:    p.Avatar,
		Bio:       p.Bio,
		Followers: p.Followers,
		Following: p.Following,
		NFTs:      p.NFTs,
	}
}

func toAPIAuthor(a entities.Author) Author {
	return Author{
		Name:           a.Name,
		Handle:         a.Handle,
		Avatar:         a.Avatar,
		Verified:       a.Verified,
		HardwareSigned: a.HardwareSigned,
		Address:        a.Address,
	}
}

func toAPIPost(s feed.Snapshot, p entities.Post) Post {
	out := Post{
		ID:        p.ID,
		Author:    toAPIAuthor(p.Author),
		Content:   p.Content,
		CreatedAt: p.CreatedAt.Unix(),
		Likes:     s.LikeCount(p.ID),
		Liked:     s.IsLiked(p.ID),
		Reposts:   p.Reposts,
		Replies:   p.Replies,
		Tips:      p.Tips,
		Image:     p.Image,
	}

	if p.Comments != nil {
		out.Comments = make([]Comment, len(p.Comments))
		for i, c := range p.Comments {
			out.Comments[i] = Comment{
				ID:        c.ID,
				Author:    toAPIAuthor(c.Author),
				Content:   c.Content,
				CreatedAt: c.CreatedAt.Unix(),
				Likes:     c.Likes,
			}
		}
	}

	return out
}

func toAPIChat(c entities.Chat) Chat {
	return Chat{
		ID: c.ID,
		Participant: Participant{
			ID:       c.Participant.ID,
			Name:     c.Participant.Name,
			Handle:   c.Participant.Handle,
			Avatar:   c.Participant.Avatar,
			Verified: c.Participant.Verified,
		},
		LastMessage: c.LastMessage,
		UpdatedAt:   c.UpdatedAt.Unix(),
		Unread:      c.Unread,
	}
}

func toAPICommunity(c entities.Community) Community {
	return Community{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Members:     c.Members,
		Avatar:      c.Avatar,
		Banner:      c.Banner,
		Joined:      c.Joined,
	}
}
