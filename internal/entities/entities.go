// Package entities contains main entities of service.
package entities

import (
	"time"
)

// LocalUserID is the sender id of messages written by the viewer.
const LocalUserID = "me"

// UserProfile is the local viewer.
type UserProfile struct {
	Name      string
	Handle    string
	Address   string
	Avatar    string
	Bio       string
	Followers int
	Following int
	NFTs      []string
}

// Author ...
type Author struct {
	Name           string
	Handle         string
	Avatar         string
	Verified       bool
	HardwareSigned bool
	Address        string
}

// Post ...
type Post struct {
	ID        string
	Author    Author
	Content   string
	CreatedAt time.Time
	Likes     int
	Reposts   int
	Replies   int
	Tips      float64
	Image     string
	// Comments is nil when comments are not tracked for the post. Newest first.
	Comments []Comment
}

// Comment ...
type Comment struct {
	ID        string
	Author    Author
	Content   string
	CreatedAt time.Time
	Likes     int
}

// Participant is the remote side of a chat.
type Participant struct {
	ID       string
	Name     string
	Handle   string
	Avatar   string
	Verified bool
}

// Chat ...
type Chat struct {
	ID          string
	Participant Participant
	LastMessage string
	UpdatedAt   time.Time
	Unread      bool
}

// Message ...
type Message struct {
	ID       string
	SenderID string
	Text     string
	SentAt   time.Time
}

// Community ...
type Community struct {
	ID          string
	Name        string
	Description string
	Members     int
	Avatar      string
	Banner      string
	Joined      bool
}

// Trend is an explore page topic.
type Trend struct {
	Tag      string
	Posts    string
	Category string
}

// Story ...
type Story struct {
	ID     string
	Name   string
	Avatar string
	Active bool
}

// AuthorFromProfile returns verified and hardware signed author built from the profile.
func AuthorFromProfile(p UserProfile) Author {
	return Author{
		Name:           p.Name,
		Handle:         p.Handle,
		Avatar:         p.Avatar,
		Verified:       true,
		HardwareSigned: true,
		Address:        p.Address,
	}
}
