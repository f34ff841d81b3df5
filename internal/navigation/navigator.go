package navigation

import (
	"fmt"
)

// DefaultHistoryLimit bounds history of a long session.
const DefaultHistoryLimit = 256

// Navigator is a state machine over views with a bounded history stack.
// It is not safe for concurrent use.
type Navigator struct {
	history []View
	limit   int
}

// NewNavigator returns a navigator at Welcome. limit < 2 means DefaultHistoryLimit.
func NewNavigator(limit int) *Navigator {
	if limit < 2 {
		limit = DefaultHistoryLimit
	}

	return &Navigator{
		history: []View{Welcome},
		limit:   limit,
	}
}

// Current returns the active view.
func (n *Navigator) Current() View {
	return n.history[len(n.history)-1]
}

// History returns a copy of visited views, oldest first.
func (n *Navigator) History() []View {
	return append([]View(nil), n.history...)
}

// Goto makes v current. It returns false when v is current already.
func (n *Navigator) Goto(v View) (bool, error) {
	if !v.Valid() {
		return false, fmt.Errorf("%w: %s", ErrUnknownView, v)
	}

	if v == n.Current() {
		return false, nil
	}

	n.history = append(n.history, v)
	if len(n.history) > n.limit {
		n.history = append(n.history[:0], n.history[len(n.history)-n.limit:]...)
	}

	return true, nil
}

// Back pops the current view. With a single entry left it resets to Welcome,
// which also covers a history trimmed by the limit.
func (n *Navigator) Back() bool {
	if len(n.history) <= 1 {
		if n.Current() == Welcome {
			return false
		}
		n.Reset()
		return true
	}

	n.history = n.history[:len(n.history)-1]

	return true
}

// Reset leaves Welcome as the only entry.
func (n *Navigator) Reset() {
	n.history = append(n.history[:0], Welcome)
}
