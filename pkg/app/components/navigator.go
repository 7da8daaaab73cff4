package components

import "github.com/kerbaras/animequotes/pkg/data"

// Navigator is the slide cursor over a fixed, non-empty list of quotes.
type Navigator struct {
	entries []data.Quote
	index   int
	wrap    bool
}

// NewNavigator copies entries. An empty list is a programming error since
// the loader rejects it.
func NewNavigator(entries []data.Quote, wrap bool) *Navigator {
	if len(entries) == 0 {
		panic("components: navigator needs at least one quote")
	}

	owned := make([]data.Quote, len(entries))
	copy(owned, entries)

	return &Navigator{
		entries: owned,
		wrap:    wrap,
	}
}

// Advance moves to the next quote and reports whether the index changed.
// Without wrap it stops at the last quote.
func (n *Navigator) Advance() bool {
	next := n.index + 1
	if next >= len(n.entries) {
		if !n.wrap {
			return false
		}
		next = 0
	}
	return n.moveTo(next)
}

// Retreat moves to the previous quote and reports whether the index changed.
// Without wrap it stops at the first quote.
func (n *Navigator) Retreat() bool {
	prev := n.index - 1
	if prev < 0 {
		if !n.wrap {
			return false
		}
		prev = len(n.entries) - 1
	}
	return n.moveTo(prev)
}

func (n *Navigator) First() bool {
	return n.moveTo(0)
}

func (n *Navigator) Last() bool {
	return n.moveTo(len(n.entries) - 1)
}

func (n *Navigator) moveTo(i int) bool {
	if i == n.index {
		return false
	}
	n.index = i
	return true
}

func (n *Navigator) Index() int {
	return n.index
}

func (n *Navigator) Len() int {
	return len(n.entries)
}

func (n *Navigator) Wraps() bool {
	return n.wrap
}

// AtEnd reports whether the cursor is on the last quote.
func (n *Navigator) AtEnd() bool {
	return n.index == len(n.entries)-1
}

func (n *Navigator) Current() data.Quote {
	return n.entries[n.index]
}
