package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
)

// Vote reports whether a user has voted on a subject and with what type.
// This is a probe: a missing vote is not an error.
//
// isQuestion selects the subject space; question and answer votes are kept
// strictly apart.
func (s *Store) Vote(ctx context.Context, subjectID, userID int64, isQuestion bool) (model.VoteStatus, error) {
	return vote(ctx, s.db, subjectID, userID, isQuestion)
}

func vote(ctx context.Context, q querier, subjectID, userID int64, isQuestion bool) (model.VoteStatus, error) {
	stmt := catalog.AnswerVoteByUser
	if isQuestion {
		stmt = catalog.QuestionVoteByUser
	}

	var voteType int
	err := q.QueryRowContext(ctx, stmt, subjectID, userID).Scan(&voteType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.VoteStatus{}, nil
	}
	if err != nil {
		return model.VoteStatus{}, driverError("fetching vote failed", err)
	}

	return model.VoteStatus{Voted: true, Type: voteType}, nil
}

// CastVote records a user's vote on a subject. A first vote inserts a row;
// a repeat vote overwrites the existing row's type, so no delta is computed
// and no second row is ever created. Probe and write
// share one transaction so concurrent casts cannot duplicate a vote.
//
// A failed insert and a failed overwrite surface as distinct errors: vote
// addition failed versus vote update failed.
func (s *Store) CastVote(ctx context.Context, subjectID, userID int64, voteType int, isQuestion bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return driverError("vote addition failed", err)
	}
	defer tx.Rollback() // No-op if committed

	status, err := vote(ctx, tx, subjectID, userID, isQuestion)
	if err != nil {
		return err
	}

	if status.Voted {
		stmt := catalog.AnswerVoteUpdate
		if isQuestion {
			stmt = catalog.QuestionVoteUpdate
		}
		if _, err := tx.ExecContext(ctx, stmt, voteType, subjectID, userID); err != nil {
			return updateFailed("vote update failed", err)
		}
	} else {
		stmt := catalog.AnswerVoteInsert
		if isQuestion {
			stmt = catalog.QuestionVoteInsert
		}
		if _, err := tx.ExecContext(ctx, stmt, voteType, subjectID, userID); err != nil {
			return insertFailed("vote addition failed", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return driverError("vote addition failed", err)
	}
	return nil
}

// RetractVote deletes the user's vote on a subject. Deleting a vote that
// does not exist is indistinguishable from success; only a driver error
// fails.
func (s *Store) RetractVote(ctx context.Context, subjectID, userID int64, isQuestion bool) error {
	stmt := catalog.AnswerVoteDelete
	if isQuestion {
		stmt = catalog.QuestionVoteDelete
	}

	if _, err := s.db.ExecContext(ctx, stmt, subjectID, userID); err != nil {
		return deleteFailed("vote deletion failed", err)
	}
	return nil
}

// VoteTally returns the signed sum of vote types for a subject. A subject
// with no votes tallies zero.
func (s *Store) VoteTally(ctx context.Context, subjectID int64, isQuestion bool) (int, error) {
	stmt := catalog.AnswerVoteCount
	if isQuestion {
		stmt = catalog.QuestionVoteCount
	}

	var tally int
	if err := s.db.QueryRowContext(ctx, stmt, subjectID).Scan(&tally); err != nil {
		return 0, driverError("vote count fetching error", err)
	}
	return tally, nil
}
