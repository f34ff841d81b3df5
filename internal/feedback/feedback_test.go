package feedback

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var called bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/feedback", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"bug","message":"nie działa","view":"nearby","role":"user"}`, string(b))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", time.Second)

	require.NoError(t, c.Send(context.Background(), Report{
		Type:    BugType,
		Message: "nie działa",
		View:    "nearby",
		Role:    "user",
	}))
	require.True(t, called)
}

func TestClient_Send_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"message is too long"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Send(context.Background(), Report{Type: BugType, Message: "x"})
	require.True(t, errors.Is(err, ErrRejected))
	require.Contains(t, err.Error(), "message is too long")
}

func TestClient_Send_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewClient(srv.URL, time.Second).Send(ctx, Report{Type: BugType, Message: "x"})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrRejected))
	require.True(t, errors.Is(err, context.Canceled))
}
