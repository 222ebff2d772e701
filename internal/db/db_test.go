package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndRecentEntries(t *testing.T) {
	s := openTestStore(t)

	for _, in := range []string{"one", "two", "three"} {
		_, err := s.AddEntry("uwu", in, in+"!")
		require.NoError(t, err)
	}

	entries, err := s.RecentEntries(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0].Input)
	assert.Equal(t, "three", entries[1].Input)
	assert.Equal(t, "three!", entries[1].Output)
	assert.Equal(t, "uwu", entries[1].Style)
	assert.False(t, entries[1].CreatedAt.IsZero())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	_, err := a.AddEntry("owo", "hi", "hi")
	require.NoError(t, err)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFlush(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AddEntry("uwu", "a", "a")
	require.NoError(t, err)
	require.NoError(t, s.Flush())

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	id, err := s.AddEntry("uwu", "b", "b")
	require.NoError(t, err)
	assert.Equal(t, 1, id, "flush resets the ID counter")
}

func TestOpenFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer s.Close()

	id, err := s.AddEntry("shout", "x", "X")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestCloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
