package session

import (
	"context"

	"github.com/Decentr-net/usly/internal/navigation"
)

// Request is a handle of an asynchronous operation started by a session.
// A view-bound request is tied to the view which was current when it started:
// leaving the view cancels it and its late completion is ignored.
// Other requests are canceled only with the session or on logout.
type Request struct {
	kind   string
	view   navigation.View
	bound  bool
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// View returns the view which was current when the request started.
func (r *Request) View() navigation.View {
	return r.view
}

// Cancel cancels the request. Its completion will be ignored.
func (r *Request) Cancel() {
	r.cancel()
}

// Done is closed when the request is completed or canceled.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Err returns the outcome of the request. It must be called after Done is closed.
// Canceled requests return context.Canceled.
func (r *Request) Err() error {
	return r.err
}
