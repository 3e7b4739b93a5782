// Package testutil provides shared helpers for tests that need a real
// store or collision-free fixture names.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/parnab/overflow/internal/store"
)

// TempStore opens a file-backed store in a temp dir, closed on cleanup.
func TempStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forum.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// UniqueName returns a name that will not collide with any other fixture,
// for columns carrying a UNIQUE constraint.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
