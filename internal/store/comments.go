package store

import (
	"context"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
)

// Comments returns a subject's comments joined with commenter identity,
// oldest first. isQuestion selects the question or answer comment space.
func (s *Store) Comments(ctx context.Context, subjectID int64, isQuestion bool) ([]model.Comment, error) {
	stmt := catalog.AnswerComments
	if isQuestion {
		stmt = catalog.QuestionComments
	}

	rows, err := s.db.QueryContext(ctx, stmt, subjectID)
	if err != nil {
		return nil, driverError("comment query failed", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		err := rows.Scan(&c.ID, &c.Body, &c.OwnerID, &c.OwnerName,
			&c.SubjectID, &c.Created, &c.LastModified)
		if err != nil {
			return nil, driverError("comment query failed", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, driverError("comment query failed", err)
	}
	return comments, nil
}

// SaveComment inserts a comment on a question or answer and returns the
// store-assigned id. Comments are append-only at this layer, so the
// caller's creation time is written to both the created and last-modified
// columns.
func (s *Store) SaveComment(ctx context.Context, c model.NewComment, isQuestion bool) (int64, error) {
	stmt := catalog.AnswerCommentInsert
	if isQuestion {
		stmt = catalog.QuestionCommentInsert
	}

	res, err := s.db.ExecContext(ctx, stmt, c.Body, c.OwnerID, c.SubjectID, c.Created, c.Created)
	if err != nil {
		return 0, insertFailed("comment insertion failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, insertFailed("comment insertion failed", err)
	}
	return id, nil
}
