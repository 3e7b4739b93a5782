package store

import (
	"context"
	"testing"
)

func TestCreateAnswer_ReturnsGeneratedID(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	id, err := s.CreateAnswer(ctx, "<p>a</p>", "a", question, owner)
	if err != nil {
		t.Fatalf("CreateAnswer() failed: %v", err)
	}
	if id == 0 {
		t.Error("id = 0, want store-assigned id")
	}

	a, err := s.AnswerByID(ctx, id)
	if err != nil {
		t.Fatalf("AnswerByID() failed: %v", err)
	}
	if a.QuestionID != question || a.OwnerID != owner || a.Accepted {
		t.Errorf("answer = %+v", a)
	}
}

func TestAnswerByID_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.AnswerByID(context.Background(), 404)
	if err == nil {
		t.Fatal("AnswerByID() on absent id succeeded, want error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestAnswersByQuestion_AcceptedFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")
	first := createTestAnswer(t, s, question, owner, "first")
	second := createTestAnswer(t, s, question, owner, "second")

	if err := s.AcceptAnswer(ctx, second); err != nil {
		t.Fatalf("AcceptAnswer() failed: %v", err)
	}

	answers, err := s.AnswersByQuestion(ctx, question)
	if err != nil {
		t.Fatalf("AnswersByQuestion() failed: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("len = %d, want 2", len(answers))
	}
	if answers[0].ID != second || !answers[0].Accepted {
		t.Errorf("answers[0] = %+v, want accepted answer %d", answers[0], second)
	}
	if answers[1].ID != first || answers[1].Accepted {
		t.Errorf("answers[1] = %+v, want unaccepted answer %d", answers[1], first)
	}
}

func TestAnswersByOwner(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	asker := createTestUser(t, s)
	answerer := createTestUser(t, s)
	question := createTestQuestion(t, s, asker, "q")
	mine := createTestAnswer(t, s, question, answerer, "mine")
	createTestAnswer(t, s, question, asker, "self answer")

	answers, err := s.AnswersByOwner(ctx, answerer)
	if err != nil {
		t.Fatalf("AnswersByOwner() failed: %v", err)
	}
	if len(answers) != 1 || answers[0].ID != mine {
		t.Errorf("answers = %+v, want single answer %d", answers, mine)
	}
}

func TestAcceptAnswer_DisplacesSibling(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")
	first := createTestAnswer(t, s, question, owner, "first")
	second := createTestAnswer(t, s, question, owner, "second")

	if err := s.AcceptAnswer(ctx, first); err != nil {
		t.Fatalf("AcceptAnswer(first) failed: %v", err)
	}
	if err := s.AcceptAnswer(ctx, second); err != nil {
		t.Fatalf("AcceptAnswer(second) failed: %v", err)
	}

	var accepted int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM answers WHERE question = ? AND is_accepted = 1", question,
	).Scan(&accepted)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if accepted != 1 {
		t.Fatalf("accepted answers = %d, want exactly 1", accepted)
	}

	a, err := s.AnswerByID(ctx, second)
	if err != nil {
		t.Fatalf("AnswerByID() failed: %v", err)
	}
	if !a.Accepted {
		t.Error("second answer not accepted after transition")
	}
}

func TestAcceptAnswer_UnknownAnswer(t *testing.T) {
	s := createTestStore(t)

	err := s.AcceptAnswer(context.Background(), 9999)
	if err == nil {
		t.Fatal("AcceptAnswer() on absent answer succeeded, want error")
	}
}

func TestRejectAnswer(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")
	answer := createTestAnswer(t, s, question, owner, "a")

	if err := s.AcceptAnswer(ctx, answer); err != nil {
		t.Fatalf("AcceptAnswer() failed: %v", err)
	}
	if err := s.RejectAnswer(ctx, answer); err != nil {
		t.Fatalf("RejectAnswer() failed: %v", err)
	}

	a, err := s.AnswerByID(ctx, answer)
	if err != nil {
		t.Fatalf("AnswerByID() failed: %v", err)
	}
	if a.Accepted {
		t.Error("answer still accepted after rejection")
	}

	// Rejecting an already-rejected answer is not an error.
	if err := s.RejectAnswer(ctx, answer); err != nil {
		t.Errorf("second RejectAnswer() failed: %v", err)
	}
}
