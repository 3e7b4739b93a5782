// Package seed loads YAML fixture files and applies them to a store.
// Fixtures go through the store facade only, so seeding exercises the same
// paths the application uses.
package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/parnab/overflow/internal/model"
	"github.com/parnab/overflow/internal/store"
)

// Fixture is the root of a seed file.
type Fixture struct {
	// Users are created first; questions and answers refer to them by
	// username.
	Users []User `yaml:"users"`

	// Questions are created in file order, each with its tags, answers,
	// votes and comments.
	Questions []Question `yaml:"questions"`
}

// User declares a forum user, optionally with profile fields.
type User struct {
	Username string `yaml:"username"`
	Avatar   string `yaml:"avatar,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Location string `yaml:"location,omitempty"`
	Bio      string `yaml:"bio,omitempty"`
}

// Question declares a question and its nested content.
type Question struct {
	Title    string    `yaml:"title"`
	Body     string    `yaml:"body"`
	BodyText string    `yaml:"body_text,omitempty"`
	Owner    string    `yaml:"owner"`
	Tags     []string  `yaml:"tags,omitempty"`
	Answers  []Answer  `yaml:"answers,omitempty"`
	Votes    []Vote    `yaml:"votes,omitempty"`
	Comments []Comment `yaml:"comments,omitempty"`
}

// Answer declares an answer to its enclosing question.
type Answer struct {
	Body     string    `yaml:"body"`
	BodyText string    `yaml:"body_text,omitempty"`
	Owner    string    `yaml:"owner"`
	Accepted bool      `yaml:"accepted,omitempty"`
	Votes    []Vote    `yaml:"votes,omitempty"`
	Comments []Comment `yaml:"comments,omitempty"`
}

// Vote declares a vote by username; type is the signed vote value.
type Vote struct {
	User string `yaml:"user"`
	Type int    `yaml:"type"`
}

// Comment declares a comment by username.
type Comment struct {
	User string `yaml:"user"`
	Body string `yaml:"body"`
}

// Load reads and parses a fixture file. Unknown fields are rejected so a
// typo in a fixture fails loudly instead of silently dropping data.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var f Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&f); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &f, nil
}

func validate(f *Fixture) error {
	names := make(map[string]bool, len(f.Users))
	for i, u := range f.Users {
		if u.Username == "" {
			return fmt.Errorf("users[%d]: username is required", i)
		}
		names[u.Username] = true
	}

	for i, q := range f.Questions {
		if q.Title == "" {
			return fmt.Errorf("questions[%d]: title is required", i)
		}
		if !names[q.Owner] {
			return fmt.Errorf("questions[%d]: unknown owner %q", i, q.Owner)
		}
		for j, a := range q.Answers {
			if !names[a.Owner] {
				return fmt.Errorf("questions[%d].answers[%d]: unknown owner %q", i, j, a.Owner)
			}
		}
	}
	return nil
}

// Apply writes the fixture to the store. Content is created in declaration
// order; the first failure aborts the rest.
func Apply(ctx context.Context, s *store.Store, f *Fixture, now time.Time) error {
	ids := make(map[string]int64, len(f.Users))

	for _, u := range f.Users {
		id, err := s.CreateUser(ctx, u.Username, u.Avatar)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		ids[u.Username] = id

		if u.Name != "" || u.Email != "" || u.Location != "" || u.Bio != "" {
			profile := model.Profile{Name: u.Name, Email: u.Email, Location: u.Location, Bio: u.Bio}
			if err := s.UpdateUserProfile(ctx, id, profile); err != nil {
				return fmt.Errorf("seed user %s profile: %w", u.Username, err)
			}
		}
	}

	for _, q := range f.Questions {
		if err := applyQuestion(ctx, s, ids, q, now); err != nil {
			return err
		}
	}
	return nil
}

func applyQuestion(ctx context.Context, s *store.Store, ids map[string]int64, q Question, now time.Time) error {
	questionID, err := s.CreateQuestion(ctx, model.NewQuestion{
		Title:    q.Title,
		Body:     q.Body,
		BodyText: orBody(q.BodyText, q.Body),
		Tags:     q.Tags,
	}, ids[q.Owner])
	if err != nil {
		return fmt.Errorf("seed question %q: %w", q.Title, err)
	}

	for _, v := range q.Votes {
		if err := s.CastVote(ctx, questionID, ids[v.User], v.Type, true); err != nil {
			return fmt.Errorf("seed question %q vote: %w", q.Title, err)
		}
	}
	for _, c := range q.Comments {
		comment := model.NewComment{Body: c.Body, OwnerID: ids[c.User], SubjectID: questionID, Created: now}
		if _, err := s.SaveComment(ctx, comment, true); err != nil {
			return fmt.Errorf("seed question %q comment: %w", q.Title, err)
		}
	}

	for _, a := range q.Answers {
		answerID, err := s.CreateAnswer(ctx, a.Body, orBody(a.BodyText, a.Body), questionID, ids[a.Owner])
		if err != nil {
			return fmt.Errorf("seed question %q answer: %w", q.Title, err)
		}
		if a.Accepted {
			if err := s.AcceptAnswer(ctx, answerID); err != nil {
				return fmt.Errorf("seed question %q accept: %w", q.Title, err)
			}
		}
		for _, v := range a.Votes {
			if err := s.CastVote(ctx, answerID, ids[v.User], v.Type, false); err != nil {
				return fmt.Errorf("seed question %q answer vote: %w", q.Title, err)
			}
		}
		for _, c := range a.Comments {
			comment := model.NewComment{Body: c.Body, OwnerID: ids[c.User], SubjectID: answerID, Created: now}
			if _, err := s.SaveComment(ctx, comment, false); err != nil {
				return fmt.Errorf("seed question %q answer comment: %w", q.Title, err)
			}
		}
	}
	return nil
}

// orBody falls back to the rich body when no plain-text body is declared.
func orBody(text, body string) string {
	if text != "" {
		return text
	}
	return body
}
