//go:build unit

package kvstore_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/infra/kvstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileStore(t *testing.T) {
	t.Run("set then get round-trips", func(t *testing.T) {
		s := kvstore.NewFileStore(t.TempDir(), discardLogger())

		s.Set(kvstore.KeyCart, `[{"_id":"p1","QTY":2}]`)

		got, ok := s.Get(kvstore.KeyCart)
		require.True(t, ok)
		assert.Equal(t, `[{"_id":"p1","QTY":2}]`, got)
	})

	t.Run("missing key is a miss, not an error", func(t *testing.T) {
		s := kvstore.NewFileStore(t.TempDir(), discardLogger())

		got, ok := s.Get("never_written")
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("set overwrites the previous value", func(t *testing.T) {
		s := kvstore.NewFileStore(t.TempDir(), discardLogger())

		s.Set(kvstore.KeyChatSession, "first")
		s.Set(kvstore.KeyChatSession, "second")

		got, ok := s.Get(kvstore.KeyChatSession)
		require.True(t, ok)
		assert.Equal(t, "second", got)
	})

	t.Run("values survive a new store over the same directory", func(t *testing.T) {
		dir := t.TempDir()

		kvstore.NewFileStore(dir, discardLogger()).Set(kvstore.KeyDismissedAnnouncements, `["a1"]`)

		got, ok := kvstore.NewFileStore(dir, discardLogger()).Get(kvstore.KeyDismissedAnnouncements)
		require.True(t, ok)
		assert.Equal(t, `["a1"]`, got)
	})

	t.Run("path separators in keys cannot escape the state dir", func(t *testing.T) {
		dir := t.TempDir()
		s := kvstore.NewFileStore(dir, discardLogger())

		s.Set("../escape", "value")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "___escape.json", entries[0].Name())

		_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unwritable directory degrades to misses without failing", func(t *testing.T) {
		s := kvstore.NewFileStore("/proc/no-such-dir", discardLogger())

		s.Set(kvstore.KeyCart, "value")

		_, ok := s.Get(kvstore.KeyCart)
		assert.False(t, ok)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Run("set then get round-trips", func(t *testing.T) {
		s := kvstore.NewMemoryStore()

		s.Set(kvstore.KeyCart, "value")

		got, ok := s.Get(kvstore.KeyCart)
		require.True(t, ok)
		assert.Equal(t, "value", got)
	})

	t.Run("missing key is a miss", func(t *testing.T) {
		s := kvstore.NewMemoryStore()

		_, ok := s.Get("missing")
		assert.False(t, ok)
	})

	t.Run("empty string is a stored value, not a miss", func(t *testing.T) {
		s := kvstore.NewMemoryStore()

		s.Set(kvstore.KeyChatSession, "")

		got, ok := s.Get(kvstore.KeyChatSession)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}
