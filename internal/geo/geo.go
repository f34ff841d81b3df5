// Package geo resolves the user's coordinates.
package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Decentr-net/usly/internal/entities"
)

//go:generate mockgen -destination=./mock/geo.go -package=mock -source=geo.go

// Defaults.
const (
	DefaultTimeout = 8 * time.Second
	DefaultMaxAge  = 2 * time.Minute
)

var (
	// ErrUnavailable is returned when location can not be determined or the user denied it.
	ErrUnavailable = errors.New("location unavailable")
	// ErrTimeout is returned when the locator did not answer in time.
	ErrTimeout = errors.New("location timeout")
	// ErrStale is returned when the fix is older than allowed.
	ErrStale = errors.New("location is stale")
)

// Fix is a determined position.
type Fix struct {
	Coordinates entities.Coordinates
	Timestamp   time.Time
}

// Locator determines the position.
type Locator interface {
	Locate(ctx context.Context) (Fix, error)
}

// Options ...
type Options struct {
	Timeout time.Duration
	MaxAge  time.Duration
	Now     func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxAge <= 0 {
		o.MaxAge = DefaultMaxAge
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type result struct {
	fix Fix
	err error
}

// Locate asks the locator for a fix bounded by timeout and rejects fixes older than max age.
func Locate(ctx context.Context, l Locator, opts Options) (entities.Coordinates, error) {
	opts = opts.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		fix, err := l.Locate(ctx)
		ch <- result{fix: fix, err: err}
	}()

	var r result
	select {
	case r = <-ch:
	case <-ctx.Done():
		r.err = ctx.Err()
	}

	switch {
	case r.err == nil:
	case errors.Is(r.err, context.DeadlineExceeded):
		return entities.Coordinates{}, ErrTimeout
	case errors.Is(r.err, context.Canceled), errors.Is(r.err, ErrUnavailable), errors.Is(r.err, ErrTimeout):
		return entities.Coordinates{}, r.err
	default:
		return entities.Coordinates{}, fmt.Errorf("%w: %s", ErrUnavailable, r.err)
	}

	if age := opts.Now().Sub(r.fix.Timestamp); age > opts.MaxAge {
		return entities.Coordinates{}, fmt.Errorf("%w: %s old", ErrStale, age.Truncate(time.Second))
	}

	return r.fix.Coordinates, nil
}

// Reported is a position reported by the client device.
type Reported struct {
	Fix Fix
	// Err is set when the device could not determine the position.
	Err error
}

// Locate ...
func (r Reported) Locate(ctx context.Context) (Fix, error) {
	if r.Err != nil {
		return Fix{}, r.Err
	}
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	return r.Fix, nil
}
