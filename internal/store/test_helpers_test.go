package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/parnab/overflow/internal/model"
)

// createTestStore creates a file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var nextUser int

// createTestUser inserts a user with a unique username and returns its id.
func createTestUser(t *testing.T, s *Store) int64 {
	t.Helper()
	nextUser++
	id, err := s.CreateUser(context.Background(), fmt.Sprintf("user-%d", nextUser), "avatar.png")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return id
}

// createTestQuestion inserts a question with the given tags and returns its id.
func createTestQuestion(t *testing.T, s *Store, owner int64, title string, tags ...string) int64 {
	t.Helper()
	q := model.NewQuestion{
		Title:    title,
		Body:     "<p>" + title + "</p>",
		BodyText: title,
		Tags:     tags,
	}
	id, err := s.CreateQuestion(context.Background(), q, owner)
	if err != nil {
		t.Fatalf("CreateQuestion(%q) failed: %v", title, err)
	}
	return id
}

// createTestAnswer inserts an answer and returns its id.
func createTestAnswer(t *testing.T, s *Store, question, owner int64, body string) int64 {
	t.Helper()
	id, err := s.CreateAnswer(context.Background(), "<p>"+body+"</p>", body, question, owner)
	if err != nil {
		t.Fatalf("CreateAnswer(%q) failed: %v", body, err)
	}
	return id
}
