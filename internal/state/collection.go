package state

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

// Collection keeps tracked records in display order. It is owned by the UI
// loop and is not safe for concurrent use.
type Collection struct {
	order   []string
	records map[string]*Record
	newID   func() string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		records: make(map[string]*Record),
		newID:   func() string { return uuid.NewString() },
	}
}

// Validate checks a candidate name without modifying the collection.
func (c *Collection) Validate(name string) error {
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return &ValidationError{Kind: InvalidLength, Name: name}
	}
	if _, ok := c.records[name]; ok {
		return &ValidationError{Kind: DuplicateIdentity, Name: name}
	}
	return nil
}

// Add starts tracking name. The new record is Loading and appended last.
func (c *Collection) Add(name string) (Record, error) {
	if err := c.Validate(name); err != nil {
		return Record{}, err
	}
	rec := &Record{
		Name:        name,
		DisplayName: name,
		Status:      StatusLoading,
		StatusText:  LoadingText,
		Token:       c.newID(),
	}
	c.records[name] = rec
	c.order = append(c.order, name)
	return *rec, nil
}

// Remove stops tracking name. It reports whether anything was removed.
func (c *Collection) Remove(name string) bool {
	if _, ok := c.records[name]; !ok {
		return false
	}
	delete(c.records, name)
	if idx := c.indexOf(name); idx >= 0 {
		c.order = append(c.order[:idx], c.order[idx+1:]...)
	}
	return true
}

// MoveUp swaps name with the nearest earlier record accepted by visible. A nil
// visible treats every record as visible.
func (c *Collection) MoveUp(name string, visible func(Record) bool) bool {
	return c.move(name, -1, visible)
}

// MoveDown swaps name with the nearest later record accepted by visible.
func (c *Collection) MoveDown(name string, visible func(Record) bool) bool {
	return c.move(name, 1, visible)
}

func (c *Collection) move(name string, dir int, visible func(Record) bool) bool {
	idx := c.indexOf(name)
	if idx < 0 {
		return false
	}
	for j := idx + dir; j >= 0 && j < len(c.order); j += dir {
		neighbor := c.records[c.order[j]]
		if visible != nil && !visible(*neighbor) {
			continue
		}
		c.order[idx], c.order[j] = c.order[j], c.order[idx]
		return true
	}
	return false
}

// ApplyProfile stores resolved profile data. It is ignored unless the record
// still exists under the same token and is loading.
func (c *Collection) ApplyProfile(name, token, displayName, iconURL string) bool {
	rec := c.live(name, token)
	if rec == nil {
		return false
	}
	if displayName != "" {
		rec.DisplayName = displayName
	}
	rec.IconURL = iconURL
	return true
}

// Resolve moves a loading record to a terminal status.
func (c *Collection) Resolve(name, token string, status Status, text string) bool {
	if !status.Terminal() {
		return false
	}
	rec := c.live(name, token)
	if rec == nil {
		return false
	}
	rec.Status = status
	rec.StatusText = text
	return true
}

// Alive reports whether token still identifies a loading record for name.
func (c *Collection) Alive(name, token string) bool {
	return c.live(name, token) != nil
}

func (c *Collection) live(name, token string) *Record {
	rec, ok := c.records[name]
	if !ok || rec.Token != token || rec.Status != StatusLoading {
		return nil
	}
	return rec
}

// Get returns a copy of the record for name.
func (c *Collection) Get(name string) (Record, bool) {
	rec, ok := c.records[name]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Has reports whether name is tracked.
func (c *Collection) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Len returns the number of tracked records.
func (c *Collection) Len() int {
	return len(c.order)
}

// Names returns tracked names in display order.
func (c *Collection) Names() []string {
	if len(c.order) == 0 {
		return nil
	}
	dup := make([]string, len(c.order))
	copy(dup, c.order)
	return dup
}

// Records returns copies of all records in display order.
func (c *Collection) Records() []Record {
	if len(c.order) == 0 {
		return nil
	}
	out := make([]Record, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.records[name])
	}
	return out
}

// Visible returns the records accepted by visible, in display order.
func (c *Collection) Visible(visible func(Record) bool) []Record {
	out := make([]Record, 0, len(c.order))
	for _, name := range c.order {
		rec := *c.records[name]
		if visible == nil || visible(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (c *Collection) indexOf(name string) int {
	for i, candidate := range c.order {
		if candidate == name {
			return i
		}
	}
	return -1
}
