package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
)

// CreateAnswer inserts an answer to a question and returns the
// store-assigned id.
func (s *Store) CreateAnswer(ctx context.Context, body, bodyText string, questionID, ownerID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, catalog.AnswerInsert, body, bodyText, questionID, ownerID)
	if err != nil {
		return 0, insertFailed("answer insertion failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, insertFailed("answer insertion failed", err)
	}
	return id, nil
}

// AnswerByID fetches a single answer. Returns NotFound if absent.
func (s *Store) AnswerByID(ctx context.Context, id int64) (model.Answer, error) {
	row := s.db.QueryRowContext(ctx, catalog.AnswerByID, id)

	var a model.Answer
	err := row.Scan(&a.ID, &a.Body, &a.BodyText, &a.QuestionID, &a.OwnerID,
		&a.OwnerName, &a.Accepted, &a.VoteCount, &a.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Answer{}, notFound("wrong id provided")
	}
	if err != nil {
		return model.Answer{}, driverError("answer lookup failed", err)
	}
	return a, nil
}

// AnswersByQuestion returns a question's answers, accepted answer first,
// then oldest first.
func (s *Store) AnswersByQuestion(ctx context.Context, questionID int64) ([]model.Answer, error) {
	return s.queryAnswers(ctx, catalog.AnswersByQuestion, questionID)
}

// AnswersByOwner returns the answers written by a user, newest first.
func (s *Store) AnswersByOwner(ctx context.Context, userID int64) ([]model.Answer, error) {
	return s.queryAnswers(ctx, catalog.AnswersByOwner, userID)
}

// AcceptAnswer marks the given answer as its question's accepted answer.
//
// The transition is guarded: the answer's parent question is looked up
// first, every sibling's acceptance flag is cleared, and only then is this
// answer marked. All three steps share one transaction, so "at most one
// accepted answer per question" holds on every exit path.
func (s *Store) AcceptAnswer(ctx context.Context, answerID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return updateFailed("could not accept the answer", err)
	}
	defer tx.Rollback() // No-op if committed

	var questionID int64
	err = tx.QueryRowContext(ctx, catalog.AnswerQuestionID, answerID).Scan(&questionID)
	if err != nil {
		return updateFailed("could not accept the answer", err)
	}

	if _, err := tx.ExecContext(ctx, catalog.AcceptClear, questionID); err != nil {
		return updateFailed("could not accept the answer", err)
	}
	if _, err := tx.ExecContext(ctx, catalog.AcceptSet, answerID); err != nil {
		return updateFailed("could not accept the answer", err)
	}

	if err := tx.Commit(); err != nil {
		return updateFailed("could not accept the answer", err)
	}

	s.log.Debug().Int64("answer", answerID).Int64("question", questionID).Msg("answer accepted")
	return nil
}

// RejectAnswer unconditionally clears the acceptance flag on the given
// answer. Rejecting an answer that was never accepted is not an error.
func (s *Store) RejectAnswer(ctx context.Context, answerID int64) error {
	if _, err := s.db.ExecContext(ctx, catalog.RejectAnswer, answerID); err != nil {
		return updateFailed("answer rejection failed", err)
	}
	return nil
}

func (s *Store) queryAnswers(ctx context.Context, stmt string, args ...any) ([]model.Answer, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, driverError("answer query failed", err)
	}
	defer rows.Close()

	answers := []model.Answer{}
	for rows.Next() {
		var a model.Answer
		err := rows.Scan(&a.ID, &a.Body, &a.BodyText, &a.QuestionID, &a.OwnerID,
			&a.OwnerName, &a.Accepted, &a.VoteCount, &a.Created)
		if err != nil {
			return nil, driverError("answer query failed", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, driverError("answer query failed", err)
	}
	return answers, nil
}
