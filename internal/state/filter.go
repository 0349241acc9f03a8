package state

// Filter selects which records are visible in the list.
type Filter int

const (
	FilterAll Filter = iota
	FilterOnline
	FilterOffline
)

var filterOrder = []Filter{FilterAll, FilterOnline, FilterOffline}

func (f Filter) String() string {
	switch f {
	case FilterOnline:
		return "online"
	case FilterOffline:
		return "offline"
	default:
		return "all"
	}
}

// Title is the label used in the filter bar.
func (f Filter) Title() string {
	switch f {
	case FilterOnline:
		return "Live"
	case FilterOffline:
		return "Offline"
	default:
		return "All"
	}
}

// Match reports whether a record is visible under the filter. Loading and
// unresolved records are never considered online.
func (f Filter) Match(r Record) bool {
	switch f {
	case FilterOnline:
		return r.Status == StatusLive
	case FilterOffline:
		return r.Status != StatusLive
	default:
		return true
	}
}

// Next cycles forward through the available filters.
func (f Filter) Next() Filter {
	return f.step(1)
}

// Prev cycles backward through the available filters.
func (f Filter) Prev() Filter {
	return f.step(-1)
}

func (f Filter) step(delta int) Filter {
	idx := 0
	for i, candidate := range filterOrder {
		if candidate == f {
			idx = i
			break
		}
	}
	n := len(filterOrder)
	return filterOrder[((idx+delta)%n+n)%n]
}

// Filters lists every filter in display order.
func Filters() []Filter {
	out := make([]Filter, len(filterOrder))
	copy(out, filterOrder)
	return out
}
