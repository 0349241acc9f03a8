package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/stream-status/internal/card"
)

// Motion is a caret movement within the search query.
type Motion int

const (
	MotionStart Motion = iota
	MotionEnd
	MotionRuneBack
	MotionRuneForward
	MotionWordBack
	MotionWordForward
)

// selection remembers which record was under the cursor when a search began.
type selection struct {
	id    string
	index int
}

// SetQuery replaces the search query and puts the caret at cursor. Starting a
// search remembers the selected record; clearing it returns to that record,
// or to the row it occupied if the record has since been removed.
func (l *Level) SetQuery(query string, cursor int) {
	was := strings.TrimSpace(l.Query) != ""
	now := strings.TrimSpace(query) != ""
	if now && !was {
		l.saved = selection{index: l.Cursor}
		if item, ok := l.Current(); ok {
			l.saved.id = item.ID
		}
	}
	l.Query = query
	l.QueryCursor = clamp(cursor, 0, len([]rune(query)))
	l.narrow()
	switch {
	case now:
		l.Cursor = bestMatch(l.Items, strings.TrimSpace(query))
	case was:
		if !l.Select(l.saved.id) && len(l.Items) > 0 {
			l.Cursor = clamp(l.saved.index, 0, len(l.Items)-1)
		}
		l.saved = selection{}
	}
}

// QueryCursorPos returns the caret offset in runes.
func (l *Level) QueryCursorPos() int {
	return clamp(l.QueryCursor, 0, len([]rune(l.Query)))
}

// InsertQuery inserts text at the caret.
func (l *Level) InsertQuery(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryBack removes the rune before the caret, or the whole preceding
// word when word is set.
func (l *Level) DeleteQueryBack(word bool) bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 {
		return false
	}
	from := pos - 1
	if word {
		from = wordStart(runes, pos)
	}
	updated := append(append([]rune{}, runes[:from]...), runes[pos:]...)
	l.SetQuery(string(updated), from)
	return true
}

// MoveQueryCursor moves the caret and reports whether it moved.
func (l *Level) MoveQueryCursor(motion Motion) bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	next := pos
	switch motion {
	case MotionStart:
		next = 0
	case MotionEnd:
		next = len(runes)
	case MotionRuneBack:
		next = pos - 1
	case MotionRuneForward:
		next = pos + 1
	case MotionWordBack:
		next = wordStart(runes, pos)
	case MotionWordForward:
		next = wordEnd(runes, pos)
	}
	next = clamp(next, 0, len(runes))
	if next == pos {
		return false
	}
	l.QueryCursor = next
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// narrow rebuilds Items from Full under the current query.
func (l *Level) narrow() {
	l.Items = MatchItems(l.Full, l.Query)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// MatchItems returns, in order, the items whose channel name or display name
// fuzzily matches query. An empty query matches everything.
func MatchItems(items []card.Item, query string) []card.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	matched := make([]card.Item, 0, len(items))
	for _, item := range items {
		if distance(item, query) >= 0 {
			matched = append(matched, item)
		}
	}
	return matched
}

// distance is the fuzzy rank of the closer of the record's two names, or -1
// when neither matches.
func distance(item card.Item, query string) int {
	best := -1
	for _, name := range []string{item.Record.Name, item.Record.DisplayName} {
		if name == "" {
			continue
		}
		if d := fuzzy.RankMatchNormalizedFold(query, name); d >= 0 && (best < 0 || d < best) {
			best = d
		}
	}
	return best
}

// bestMatch picks the row to select for query: an exact name wins, then the
// closest fuzzy match, earliest first on ties.
func bestMatch(items []card.Item, query string) int {
	best, bestDistance := 0, -1
	for i, item := range items {
		if strings.EqualFold(item.Record.Name, query) || strings.EqualFold(item.Record.DisplayName, query) {
			return i
		}
		if d := distance(item, query); d >= 0 && (bestDistance < 0 || d < bestDistance) {
			best, bestDistance = i, d
		}
	}
	return best
}
