package feed

import (
	"fmt"
)

// View is a top-level tab.
type View string

// Views.
const (
	HomeView        View = "home"
	ExploreView     View = "explore"
	MessagesView    View = "messages"
	CommunitiesView View = "communities"
	ProfileView     View = "profile"
)

// Overlay is a modal which may be open over any view.
type Overlay string

// Overlays.
const (
	CreatePostOverlay  Overlay = "create_post"
	EditProfileOverlay Overlay = "edit_profile"
)

// Screen is what is shown: a top-level view or a drill-down.
type Screen string

// Drill-down screens. Top-level views are screens too.
const (
	ThreadScreen       Screen = "thread"
	ConversationScreen Screen = "conversation"
)

// ParseView ...
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case HomeView, ExploreView, MessagesView, CommunitiesView, ProfileView:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown view %q", ErrValidation, s)
	}
}

// ParseOverlay ...
func ParseOverlay(s string) (Overlay, error) {
	switch v := Overlay(s); v {
	case CreatePostOverlay, EditProfileOverlay:
		return v, nil
	default:
		return "", fmt.Errorf("%w: unknown overlay %q", ErrValidation, s)
	}
}

// Navigation ...
type Navigation struct {
	Active         View
	CreatingPost   bool
	EditingProfile bool
	// ThreadPostID and ChatID are drill-downs; they do not change Active.
	ThreadPostID string
	ChatID       string
}

// Screen returns the screen taking visual precedence.
func (n Navigation) Screen() Screen {
	switch {
	case n.ThreadPostID != "":
		return ThreadScreen
	case n.ChatID != "":
		return ConversationScreen
	case n.Active == "":
		return Screen(HomeView)
	default:
		return Screen(n.Active)
	}
}

// IsOpen reports whether the overlay is open.
func (n Navigation) IsOpen(o Overlay) bool {
	switch o {
	case CreatePostOverlay:
		return n.CreatingPost
	case EditProfileOverlay:
		return n.EditingProfile
	default:
		return false
	}
}

func (n Navigation) withOverlay(o Overlay, open bool) Navigation {
	switch o {
	case CreatePostOverlay:
		n.CreatingPost = open
	case EditProfileOverlay:
		n.EditingProfile = open
	}
	return n
}
