package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	s := NewStorage()
	s.now = func() time.Time { return now }

	require.Nil(t, s.Get("key"))

	s.Set("key", []byte("value"), time.Minute)
	require.Equal(t, []byte("value"), s.Get("key"))

	now = now.Add(time.Minute)
	require.Nil(t, s.Get("key"))
	require.Empty(t, s.items)
}
