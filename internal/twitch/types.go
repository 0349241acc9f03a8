package twitch

// User is the profile payload returned by the users endpoint.
type User struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Logo        *string `json:"logo"`
	Bio         string  `json:"bio,omitempty"`
	Error       string  `json:"error,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// LogoURL returns the avatar URL or an empty string when the user has none.
func (u User) LogoURL() string {
	if u.Logo == nil {
		return ""
	}
	return *u.Logo
}

// Channel is the subset of channel data nested in a stream payload.
type Channel struct {
	Status string `json:"status"`
	Game   string `json:"game,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Stream describes an active broadcast.
type Stream struct {
	Game    string  `json:"game,omitempty"`
	Viewers int     `json:"viewers,omitempty"`
	Channel Channel `json:"channel"`
}

// StreamStatus is the payload returned by the streams endpoint. A nil Stream
// means the channel is offline.
type StreamStatus struct {
	Stream  *Stream `json:"stream"`
	Error   string  `json:"error,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Live reports whether the channel is broadcasting.
func (s StreamStatus) Live() bool {
	return s.Stream != nil
}

// Title returns the broadcast title for a live stream.
func (s StreamStatus) Title() string {
	if s.Stream == nil {
		return ""
	}
	return s.Stream.Channel.Status
}
