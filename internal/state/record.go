package state

// Status is the lifecycle state of a tracked record.
type Status int

const (
	StatusLoading Status = iota
	StatusLive
	StatusOffline
	StatusUnresolved
)

const (
	LoadingText    = "Loading"
	OfflineText    = "Offline"
	LiveText       = "Live"
	UnresolvedText = "Channel coming soon!"
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLive:
		return "live"
	case StatusOffline:
		return "offline"
	case StatusUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status can no longer change.
func (s Status) Terminal() bool {
	return s == StatusLive || s == StatusOffline || s == StatusUnresolved
}

// Record is one tracked channel.
type Record struct {
	Name        string
	DisplayName string
	IconURL     string
	Status      Status
	StatusText  string
	// Token identifies this generation of the record. Fetch results carry the
	// token they were issued for so results for a removed (or removed and
	// re-added) name are recognisable.
	Token string
}

// Label returns the display name, falling back to the tracked name.
func (r Record) Label() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.Name
}

// Live reports whether the record resolved to an active stream.
func (r Record) Live() bool {
	return r.Status == StatusLive
}
