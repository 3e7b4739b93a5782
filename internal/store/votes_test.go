package store

import (
	"context"
	"testing"
)

func TestVote_NotVotedIsNotAnError(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	status, err := s.Vote(ctx, question, owner, true)
	if err != nil {
		t.Fatalf("Vote() failed: %v", err)
	}
	if status.Voted {
		t.Errorf("status = %+v, want not voted", status)
	}
}

func TestCastVote_InsertsThenToggles(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	voter := createTestUser(t, s)
	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	if err := s.CastVote(ctx, question, voter, 1, true); err != nil {
		t.Fatalf("first CastVote() failed: %v", err)
	}
	// Same (subject, user), different type: must overwrite, not add.
	if err := s.CastVote(ctx, question, voter, -1, true); err != nil {
		t.Fatalf("second CastVote() failed: %v", err)
	}

	var rows int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM question_votes WHERE question_id = ? AND user = ?", question, voter,
	).Scan(&rows)
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("vote rows = %d, want exactly 1", rows)
	}

	status, err := s.Vote(ctx, question, voter, true)
	if err != nil {
		t.Fatalf("Vote() failed: %v", err)
	}
	if !status.Voted || status.Type != -1 {
		t.Errorf("status = %+v, want voted with type -1", status)
	}
}

func TestCastVote_AnswerSpaceIsDisjoint(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	voter := createTestUser(t, s)
	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")
	answer := createTestAnswer(t, s, question, owner, "a")

	if err := s.CastVote(ctx, answer, voter, 1, false); err != nil {
		t.Fatalf("CastVote() on answer failed: %v", err)
	}

	// The answer vote must not appear in the question vote space, even
	// when the ids collide numerically.
	status, err := s.Vote(ctx, answer, voter, true)
	if err != nil {
		t.Fatalf("Vote() failed: %v", err)
	}
	if status.Voted {
		t.Error("answer vote leaked into question vote space")
	}

	status, err = s.Vote(ctx, answer, voter, false)
	if err != nil {
		t.Fatalf("Vote() failed: %v", err)
	}
	if !status.Voted || status.Type != 1 {
		t.Errorf("status = %+v, want voted with type 1", status)
	}
}

func TestRetractVote(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	voter := createTestUser(t, s)
	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	if err := s.CastVote(ctx, question, voter, 1, true); err != nil {
		t.Fatalf("CastVote() failed: %v", err)
	}
	if err := s.RetractVote(ctx, question, voter, true); err != nil {
		t.Fatalf("RetractVote() failed: %v", err)
	}

	status, err := s.Vote(ctx, question, voter, true)
	if err != nil {
		t.Fatalf("Vote() failed: %v", err)
	}
	if status.Voted {
		t.Errorf("status = %+v, want not voted after retraction", status)
	}

	// Retracting an absent vote does not error unless the driver does.
	if err := s.RetractVote(ctx, question, voter, true); err != nil {
		t.Errorf("second RetractVote() failed: %v", err)
	}
}

func TestVoteTally(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	up1 := createTestUser(t, s)
	up2 := createTestUser(t, s)
	down := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	for _, vote := range []struct {
		user int64
		typ  int
	}{{up1, 1}, {up2, 1}, {down, -1}} {
		if err := s.CastVote(ctx, question, vote.user, vote.typ, true); err != nil {
			t.Fatalf("CastVote() failed: %v", err)
		}
	}

	tally, err := s.VoteTally(ctx, question, true)
	if err != nil {
		t.Fatalf("VoteTally() failed: %v", err)
	}
	if tally != 1 {
		t.Errorf("tally = %d, want 1", tally)
	}
}

func TestVoteTally_NoVotes(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	owner := createTestUser(t, s)
	question := createTestQuestion(t, s, owner, "q")

	tally, err := s.VoteTally(ctx, question, true)
	if err != nil {
		t.Fatalf("VoteTally() failed: %v", err)
	}
	if tally != 0 {
		t.Errorf("tally = %d, want 0", tally)
	}
}
