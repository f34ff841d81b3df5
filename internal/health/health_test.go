package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metaPinger struct{}

func (metaPinger) Ping(_ context.Context) (interface{}, error) {
	return 3, nil
}

func (metaPinger) Name() string {
	return "sessions"
}

func serve(t *testing.T, h http.HandlerFunc) (int, Response) {
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return w.Code, resp
}

func TestHandler(t *testing.T) {
	code, resp := serve(t, Handler(time.Second,
		metaPinger{},
		SubjectPinger("postgres", func(ctx context.Context) error { return nil }),
	))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "dev", resp.Version)
	assert.EqualValues(t, 3, resp.Meta["sessions"])
	assert.Empty(t, resp.Errors)
}

func TestHandler_Failed(t *testing.T) {
	code, resp := serve(t, Handler(time.Second,
		metaPinger{},
		SubjectPinger("postgres", func(ctx context.Context) error { return errors.New("connection refused") }),
	))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, map[string]string{"postgres": "postgres: connection refused"}, resp.Errors)
}

func TestHandler_Timeout(t *testing.T) {
	code, resp := serve(t, Handler(10*time.Millisecond,
		SubjectPinger("postgres", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}),
	))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, resp.Errors["postgres"], context.DeadlineExceeded.Error())
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "dev-undefined", GetVersion())
}
