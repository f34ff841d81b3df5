package session

import (
	"time"
)

// DefaultToastTTL is how long a transient notification stays visible.
const DefaultToastTTL = 2200 * time.Millisecond

type toast struct {
	text    string
	expires time.Time
}

// Notifier keeps transient notifications until they expire.
// It is not safe for concurrent use.
type Notifier struct {
	ttl    time.Duration
	now    func() time.Time
	toasts []toast
}

// NewNotifier ...
func NewNotifier(ttl time.Duration, now func() time.Time) *Notifier {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if now == nil {
		now = time.Now
	}

	return &Notifier{
		ttl: ttl,
		now: now,
	}
}

// Notify raises a notification.
func (n *Notifier) Notify(text string) {
	n.toasts = append(n.toasts, toast{
		text:    text,
		expires: n.now().Add(n.ttl),
	})
}

// Active drops expired notifications and returns the rest, oldest first.
func (n *Notifier) Active() []string {
	now := n.now()

	live := n.toasts[:0]
	for _, t := range n.toasts {
		if now.Before(t.expires) {
			live = append(live, t)
		}
	}
	n.toasts = live

	if len(live) == 0 {
		return nil
	}

	res := make([]string, len(live))
	for i, t := range live {
		res[i] = t.text
	}
	return res
}
