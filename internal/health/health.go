// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

// nolint:gochecknoglobals
var log = logrus.WithField("layer", "api").WithField("package", "health")

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings a dependency.
type Pinger interface {
	// Ping returns object with meta information and error.
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger.
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

// Ping ...
func (p subjectPinger) Ping(ctx context.Context) (interface{}, error) {
	if err := p.f(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", p.s, err)
	}
	return nil, nil
}

// Name ...
func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps a plain ping function, e.g. (*sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Response ...
type Response struct {
	Version string                 `json:"version"`
	Commit  string                 `json:"commit"`
	Meta    map[string]interface{} `json:"meta"`
	Errors  map[string]string      `json:"errors"`
}

// Handler pings all pingers concurrently. It responds with 503 if any of them fails.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var gr errgroup.Group
		var mu sync.Mutex
		resp := Response{
			Version: version,
			Commit:  commit,
			Meta:    map[string]interface{}{},
			Errors:  map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				resp.Meta[v.Name()] = m
				if err != nil {
					log.WithError(err).WithField("pinger", v.Name()).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
				}

				return nil
			})
		}
		_ = gr.Wait()

		w.Header().Set("Content-Type", "application/json")
		if len(resp.Errors) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		data, _ := json.Marshal(resp)
		_, _ = w.Write(data)
	}
}
