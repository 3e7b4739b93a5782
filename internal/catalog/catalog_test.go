package catalog

import (
	"strings"
	"testing"
)

func TestSchema_NotEmpty(t *testing.T) {
	s := Schema()
	if !strings.Contains(s, "CREATE TABLE IF NOT EXISTS users") {
		t.Error("schema missing users table")
	}
	if strings.Contains(strings.ToUpper(s), "DROP ") {
		t.Error("schema must not drop anything")
	}
}

func TestUserBy_Whitelist(t *testing.T) {
	for _, field := range []string{"id", "github_username", "email"} {
		stmt, ok := UserBy(field)
		if !ok {
			t.Errorf("UserBy(%q) not allowed, want allowed", field)
		}
		if !strings.Contains(stmt, field+" = ?") {
			t.Errorf("UserBy(%q) = %q, want filter on field", field, stmt)
		}
	}

	for _, field := range []string{"", "role", "bio", "id; DROP TABLE users"} {
		if _, ok := UserBy(field); ok {
			t.Errorf("UserBy(%q) allowed, want rejected", field)
		}
	}
}

func TestListStatements_HaveStableOrder(t *testing.T) {
	stmts := map[string]string{
		"RecentQuestions":   RecentQuestions,
		"QuestionsByOwner":  QuestionsByOwner,
		"SearchByText":      SearchByText,
		"AnswersByQuestion": AnswersByQuestion,
		"PopularTags":       PopularTags,
		"QuestionComments":  QuestionComments,
	}
	for name, stmt := range stmts {
		if !strings.Contains(stmt, "ORDER BY") {
			t.Errorf("%s has no ORDER BY; listings must be deterministic", name)
		}
	}
}
