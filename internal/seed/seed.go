// Package seed contains the initial mock data of the feed.
package seed

import (
	"time"

	"github.com/Decentr-net/seeker/internal/entities"
	"github.com/Decentr-net/seeker/internal/feed"
)

func avatar(seed string) string {
	return "https://picsum.photos/seed/" + seed + "/200/200"
}

// User returns the local viewer profile.
func User() entities.UserProfile {
	return entities.UserProfile{
		Name:      "bughacker",
		Handle:    "bughacker.skr",
		Address:   "Saga...4x9p",
		Avatar:    avatar("bughacker"),
		Bio:       "Hardware-attested Solana Seeker. Building on the edge of mobile Web3.",
		Followers: 128,
		Following: 84,
		NFTs: []string{
			"https://picsum.photos/seed/nft1/100/100",
			"https://picsum.photos/seed/nft2/100/100",
		},
	}
}

// Posts returns the three seed posts, newest first. Relative timestamps are computed from now.
func Posts(now time.Time) []entities.Post {
	bughacker := entities.Author{
		Name:           "bughacker.skr",
		Handle:         "bughacker.skr",
		Avatar:         avatar("bughacker"),
		Verified:       true,
		HardwareSigned: true,
		Address:        "bug...sol",
	}

	return []entities.Post{
		{
			ID:        "1",
			Author:    bughacker,
			Content:   "BJ's and I have a lot of work and cyber security is not working on the phone 😔 I have no idea 💡 😟 or the seed phrase and private key or the seed phrase and private",
			CreatedAt: time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC),
			Replies:   1,
			Comments: []entities.Comment{
				{
					ID: "c1",
					Author: entities.Author{
						Name:           "Saga Enthusiast",
						Handle:         "saga.skr",
						Avatar:         avatar("saga"),
						Verified:       true,
						HardwareSigned: true,
					},
					Content:   "I had the same issue! Try resetting the Secure Element.",
					CreatedAt: now.Add(-45 * time.Minute),
					Likes:     5,
				},
			},
		},
		{
			ID:        "2",
			Author:    bughacker,
			Content:   "Trying guy to get a new phone number for the karibu stuff I have to be able to it now and I have to go to the store 😟😟 and get a your exams to get the code to the app 😁 to get",
			CreatedAt: time.Date(2026, time.February, 20, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: "3",
			Author: entities.Author{
				Name:           "Anatoly Yakovenko",
				Handle:         "aeyakovenko.skr",
				Avatar:         avatar("toly"),
				Verified:       true,
				HardwareSigned: true,
				Address:        "toly...sol",
			},
			Content:   "The Solana Seeker is looking incredible. Mobile-first crypto is the only way we reach a billion users. 🚀",
			CreatedAt: now.Add(-30 * time.Minute),
			Likes:     1240,
			Reposts:   450,
			Replies:   89,
			Tips:      15.5,
			Image:     "https://picsum.photos/seed/seeker/800/450",
		},
	}
}

// Chats returns the two seed chats.
func Chats(now time.Time) []entities.Chat {
	return []entities.Chat{
		{
			ID: "c1",
			Participant: entities.Participant{
				ID:       "jack",
				Name:     "Captain Jack",
				Handle:   "jack.skr",
				Avatar:   avatar("jack"),
				Verified: true,
			},
			LastMessage: "[Locked Transmission]",
			UpdatedAt:   now.Add(-time.Hour),
			Unread:      true,
		},
		{
			ID: "c2",
			Participant: entities.Participant{
				ID:       "rose",
				Name:     "Rose Tyler",
				Handle:   "rose.skr",
				Avatar:   avatar("rose"),
				Verified: true,
			},
			LastMessage: "[Locked Transmission]",
			UpdatedAt:   now.Add(-2 * time.Hour),
		},
	}
}

// Messages returns seed conversations keyed by chat id, oldest first.
func Messages(now time.Time) map[string][]entities.Message {
	return map[string][]entities.Message{
		"c1": {
			{ID: "m1", SenderID: "jack", Text: "Hello! This is a secure channel between us.", SentAt: now.Add(-10 * time.Minute)},
			{ID: "m2", SenderID: "jack", Text: "TARDIS ACCESS GRANTED: This transmission is 100% hardware-encrypted.", SentAt: now.Add(-9 * time.Minute)},
			{ID: "m3", SenderID: entities.LocalUserID, Text: "The stuff is that I have to be able to get a new phone number for the karibu", SentAt: now.Add(-5 * time.Minute)},
		},
		"c2": {},
	}
}

// Communities ...
func Communities() []entities.Community {
	return []entities.Community{
		{
			ID:          "com1",
			Name:        "Solana Mobile",
			Description: "The official hub for Saga and Seeker owners. Hardware-attested discussions.",
			Members:     12400,
			Avatar:      avatar("solanamobile"),
			Banner:      "https://picsum.photos/seed/solanabanner/800/200",
			Joined:      true,
		},
		{
			ID:          "com2",
			Name:        "DeFi Degens",
			Description: "High-speed trading, yield farming, and the latest on Jupiter & Raydium.",
			Members:     45200,
			Avatar:      avatar("defi"),
			Banner:      "https://picsum.photos/seed/defibanner/800/200",
		},
		{
			ID:          "com3",
			Name:        "Seeker Builders",
			Description: "Developers building the next generation of mobile-first dApps.",
			Members:     3100,
			Avatar:      avatar("builders"),
			Banner:      "https://picsum.photos/seed/buildbanner/800/200",
		},
	}
}

// Trends returns static explore topics.
func Trends() []entities.Trend {
	return []entities.Trend{
		{Tag: "#SolanaSummer", Posts: "12.5K", Category: "Trending"},
		{Tag: "$JUP", Posts: "8.2K", Category: "DeFi"},
		{Tag: "Saga Seeker", Posts: "5.1K", Category: "Hardware"},
		{Tag: "#Bonk", Posts: "25.9K", Category: "Memes"},
	}
}

// Stories returns static home stories.
func Stories() []entities.Story {
	return []entities.Story{
		{ID: "s1", Name: "Toly", Avatar: "https://picsum.photos/seed/toly/100/100", Active: true},
		{ID: "s2", Name: "Mert", Avatar: "https://picsum.photos/seed/mert/100/100", Active: true},
		{ID: "s3", Name: "Raj", Avatar: "https://picsum.photos/seed/raj/100/100"},
		{ID: "s4", Name: "Lily", Avatar: "https://picsum.photos/seed/lily/100/100", Active: true},
		{ID: "s5", Name: "Saga", Avatar: "https://picsum.photos/seed/saga/100/100"},
	}
}

// Snapshot returns the initial snapshot with home view active.
func Snapshot(now time.Time) feed.Snapshot {
	return feed.Snapshot{
		User:        User(),
		Posts:       Posts(now),
		Likes:       map[string]feed.LikeState{},
		Chats:       Chats(now),
		Messages:    Messages(now),
		Communities: Communities(),
		Nav:         feed.Navigation{Active: feed.HomeView},
	}
}
