package state

import "github.com/atomicstack/stream-status/internal/card"

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []card.Item) []card.Item {
	dup := make([]card.Item, len(items))
	copy(dup, items)
	return dup
}
