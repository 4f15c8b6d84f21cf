// Package storetest provides an in-memory trace archive for tests.
package storetest

import (
	"testing"

	_ "modernc.org/sqlite"

	"github.com/gogpu/glrr/store"
)

// OpenMemory opens an in-memory archive and closes it on cleanup.
// It registers the SQLite driver, so callers need no blank import.
func OpenMemory(t testing.TB, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:", opts...)
	if err != nil {
		t.Fatalf("storetest.OpenMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
