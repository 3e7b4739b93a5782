package store

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
)

// ResolveOrCreateTag ensures a tag row exists for the given name and
// returns it. The insert tolerates a pre-existing tag (ON CONFLICT DO
// NOTHING); the follow-up select resolves the row either way, so calling
// this twice with the same name yields the same id and no duplicate row.
//
// Names are normalized to Unicode NFC before storage so byte-different
// spellings of the same tag collapse to one row.
func (s *Store) ResolveOrCreateTag(ctx context.Context, name string) (model.Tag, error) {
	return resolveOrCreateTag(ctx, s.db, name)
}

func resolveOrCreateTag(ctx context.Context, q querier, name string) (model.Tag, error) {
	name = norm.NFC.String(name)

	if _, err := q.ExecContext(ctx, catalog.TagInsert, name); err != nil {
		return model.Tag{}, insertFailed("tag insertion failed", err)
	}

	var tag model.Tag
	err := q.QueryRowContext(ctx, catalog.TagByName, name).Scan(&tag.ID, &tag.Name)
	if err != nil {
		return model.Tag{}, driverError("tag lookup failed", err)
	}
	return tag, nil
}

// TagsForQuestions returns the de-duplicated union of tag names across the
// given questions, preserving first-seen order. Questions are visited
// sequentially; the first failing fetch aborts the rest.
func (s *Store) TagsForQuestions(ctx context.Context, questionIDs []int64) ([]string, error) {
	seen := make(map[string]bool)
	tags := []string{}

	for _, id := range questionIDs {
		names, err := s.questionTags(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			tags = append(tags, name)
		}
	}

	return tags, nil
}

func (s *Store) questionTags(ctx context.Context, questionID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, catalog.QuestionTags, questionID)
	if err != nil {
		return nil, driverError("tag query failed", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, driverError("tag query failed", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, driverError("tag query failed", err)
	}
	return names, nil
}

// PopularTags returns tags whose name contains the expression, most used
// first. Ties rank alphabetically so the order is stable.
func (s *Store) PopularTags(ctx context.Context, expr string) ([]model.TagCount, error) {
	rows, err := s.db.QueryContext(ctx, catalog.PopularTags, like(expr))
	if err != nil {
		return nil, driverError("popular tag query failed", err)
	}
	defer rows.Close()

	tags := []model.TagCount{}
	for rows.Next() {
		var tc model.TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, driverError("popular tag query failed", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, driverError("popular tag query failed", err)
	}
	return tags, nil
}
