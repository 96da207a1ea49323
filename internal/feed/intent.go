package feed

// Intent is a user intent consumed by Reduce.
type Intent interface {
	// Op returns short intent name used in logs and metrics.
	Op() string
	intent()
}

// CreatePost ...
type CreatePost struct {
	Text string
}

// ToggleLike ...
type ToggleLike struct {
	PostID string
}

// AddComment ...
type AddComment struct {
	PostID string
	Text   string
}

// SendMessage ...
type SendMessage struct {
	ChatID string
	Text   string
}

// UpdateProfile ...
type UpdateProfile struct {
	Name string
	Bio  string
}

// ToggleCommunityMembership ...
type ToggleCommunityMembership struct {
	CommunityID string
}

// ToggleWallet flips the decorative wallet connection flag.
type ToggleWallet struct{}

// Navigate selects top-level view.
type Navigate struct {
	View View
}

// OpenThread ...
type OpenThread struct {
	PostID string
}

// CloseThread ...
type CloseThread struct{}

// OpenChat ...
type OpenChat struct {
	ChatID string
}

// CloseChat ...
type CloseChat struct{}

// OpenOverlay ...
type OpenOverlay struct {
	Overlay Overlay
}

// CloseOverlay ...
type CloseOverlay struct {
	Overlay Overlay
}

func (CreatePost) Op() string { return "create_post" }
func (ToggleLike) Op() string { return "toggle_like" }
func (AddComment) Op() string { return "add_comment" }
func (SendMessage) Op() string { return "send_message" }
func (UpdateProfile) Op() string { return "update_profile" }
func (ToggleCommunityMembership) Op() string { return "toggle_membership" }
func (ToggleWallet) Op() string { return "toggle_wallet" }
func (Navigate) Op() string { return "navigate" }
func (OpenThread) Op() string { return "open_thread" }
func (CloseThread) Op() string { return "close_thread" }
func (OpenChat) Op() string { return "open_chat" }
func (CloseChat) Op() string { return "close_chat" }
func (OpenOverlay) Op() string { return "open_overlay" }
func (CloseOverlay) Op() string { return "close_overlay" }

func (CreatePost) intent() {}
func (ToggleLike) intent() {}
func (AddComment) intent() {}
func (SendMessage) intent() {}
func (UpdateProfile) intent() {}
func (ToggleCommunityMembership) intent() {}
func (ToggleWallet) intent() {}
func (Navigate) intent() {}
func (OpenThread) intent() {}
func (CloseThread) intent() {}
func (OpenChat) intent() {}
func (CloseChat) intent() {}
func (OpenOverlay) intent() {}
func (CloseOverlay) intent() {}
