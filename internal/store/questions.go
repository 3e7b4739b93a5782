package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
	"github.com/parnab/overflow/internal/search"
)

// QuestionDetail fetches the denormalized single-question view.
// Returns NotFound if no row exists for the id, or if the returned row's id
// column is null: a detail statement built from outer joins can produce a
// row of nulls instead of no row at all, and both shapes mean "no such
// question".
func (s *Store) QuestionDetail(ctx context.Context, id int64) (model.QuestionDetail, error) {
	row := s.db.QueryRowContext(ctx, catalog.QuestionDetail, id)

	d, err := scanQuestionDetail(row)
	if errors.Is(err, sql.ErrNoRows) || IsNotFound(err) {
		return model.QuestionDetail{}, notFound("wrong id provided")
	}
	if err != nil {
		return model.QuestionDetail{}, driverError("question lookup failed", err)
	}

	return d, nil
}

// rowScanner abstracts *sql.Row for scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestionDetail(row rowScanner) (model.QuestionDetail, error) {
	var (
		id      sql.NullInt64
		title   sql.NullString
		body    sql.NullString
		text    sql.NullString
		owner   sql.NullInt64
		name    sql.NullString
		avatar  sql.NullString
		votes   sql.NullInt64
		answers sql.NullInt64
		created sql.NullTime
	)

	err := row.Scan(&id, &title, &body, &text, &owner, &name, &avatar, &votes, &answers, &created)
	if err != nil {
		return model.QuestionDetail{}, err
	}
	if !id.Valid {
		return model.QuestionDetail{}, notFound("wrong id provided")
	}

	return model.QuestionDetail{
		ID:          id.Int64,
		Title:       title.String,
		Body:        body.String,
		BodyText:    text.String,
		OwnerID:     owner.Int64,
		OwnerName:   name.String,
		OwnerAvatar: avatar.String,
		VoteCount:   int(votes.Int64),
		AnswerCount: int(answers.Int64),
		Created:     created.Time,
	}, nil
}

// RecentQuestions returns at most count questions, newest first.
// Returns InvalidArgument for a negative count. Trimming to count happens
// here, not in the statement.
func (s *Store) RecentQuestions(ctx context.Context, count int) ([]model.Question, error) {
	if count < 0 {
		return nil, invalidArgument("invalid count", nil)
	}

	questions, err := s.queryQuestions(ctx, catalog.RecentQuestions)
	if err != nil {
		return nil, err
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// QuestionsByOwner returns the questions created by a user, newest first.
func (s *Store) QuestionsByOwner(ctx context.Context, userID int64) ([]model.Question, error) {
	return s.queryQuestions(ctx, catalog.QuestionsByOwner, userID)
}

// CreateQuestion inserts a question and links its tags, resolving or
// creating each tag as needed. The whole operation is one transaction:
// tags are linked sequentially, the first failure aborts the rest, and a
// failed tag link rolls the question content back out too.
//
// Returns the store-assigned question id.
func (s *Store) CreateQuestion(ctx context.Context, q model.NewQuestion, ownerID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, driverError("question insertion incomplete", err)
	}
	defer tx.Rollback() // No-op if committed

	res, err := tx.ExecContext(ctx, catalog.QuestionInsert, q.Title, q.Body, q.BodyText, ownerID)
	if err != nil {
		return 0, insertFailed("question insertion incomplete", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, insertFailed("question insertion incomplete", err)
	}

	for _, name := range q.Tags {
		tag, err := resolveOrCreateTag(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, catalog.QuestionTagInsert, tag.ID, id); err != nil {
			return 0, insertFailed("tag linking failed", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, insertFailed("question insertion incomplete", err)
	}

	s.log.Debug().Int64("id", id).Int("tags", len(q.Tags)).Msg("question created")
	return id, nil
}

// SearchQuestions classifies the raw expression with the search grammar and
// runs the matching catalog statement. Text-like expressions are wrapped
// for substring matching here; acceptance and answer-count filters bind
// bare values.
func (s *Store) SearchQuestions(ctx context.Context, raw string) ([]model.Question, error) {
	f, err := search.Parse(raw)
	if err != nil {
		return nil, invalidArgument("malformed search expression", err)
	}

	switch f.Kind {
	case search.KindUsername:
		return s.queryQuestions(ctx, catalog.SearchByUsername, like(f.Expr))
	case search.KindTagName:
		return s.queryQuestions(ctx, catalog.SearchByTagName, like(f.Expr))
	case search.KindAcceptance:
		accepted := 0
		if f.Accepted {
			accepted = 1
		}
		return s.queryQuestions(ctx, catalog.SearchByAcceptance, accepted)
	case search.KindAnswerCount:
		return s.queryQuestions(ctx, catalog.SearchByAnswerCount, f.AnswerCount)
	default:
		return s.queryQuestions(ctx, catalog.SearchByText, like(f.Expr), like(f.Expr))
	}
}

// like wraps an expression for substring matching. Binding the wrapped
// value keeps the catalog statements free of string concatenation.
func like(expr string) string {
	return "%" + expr + "%"
}

// queryQuestions runs a statement with the shared question-summary
// projection and scans the result.
func (s *Store) queryQuestions(ctx context.Context, stmt string, args ...any) ([]model.Question, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, driverError("question query failed", err)
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		err := rows.Scan(&q.ID, &q.Title, &q.OwnerID, &q.OwnerName, &q.OwnerAvatar,
			&q.VoteCount, &q.AnswerCount, &q.Created)
		if err != nil {
			return nil, driverError("question query failed", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, driverError("question query failed", err)
	}

	// Return empty slice instead of nil
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}
