package catalog

import (
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the schema-initialization script. Every statement in it is
// idempotent (CREATE ... IF NOT EXISTS), so the script is safe to re-run.
func Schema() string {
	return schemaSQL
}

// Users.

const (
	UserInsert = `INSERT INTO users (github_username, avatar) VALUES (?, ?)`

	UserUpdate = `
		UPDATE users
		SET display_name = ?, email = ?, location = ?, bio = ?
		WHERE id = ?`

	userColumns = `id, github_username, avatar, display_name, email, location, bio, role, created`
)

// userFields is the set of columns a user may be looked up by. Lookup keys
// arrive from callers as strings, so they are validated against this set
// instead of being interpolated into SQL.
var userFields = map[string]bool{
	"id":              true,
	"github_username": true,
	"email":           true,
}

// UserBy returns the lookup statement for the given field, or false if the
// field is not a permitted lookup key.
func UserBy(field string) (string, bool) {
	if !userFields[field] {
		return "", false
	}
	return fmt.Sprintf(`SELECT %s FROM users WHERE %s = ?`, userColumns, field), true
}

// Questions.
//
// questionSummary is the shared projection for listings and search results.
// Vote and answer aggregates are computed per row; the two subqueries keep
// the projection identical across every variant so one scanner handles all
// of them.
const questionSummary = `
	SELECT ques.id, ques.title, ques.owner, u.github_username, u.avatar,
	       (SELECT COALESCE(SUM(vote_type), 0) FROM question_votes WHERE question_id = ques.id),
	       (SELECT COUNT(*) FROM answers WHERE question = ques.id),
	       ques.created
	FROM questions ques
	JOIN users u ON u.id = ques.owner`

// questionOrder makes every listing deterministic: newest first, id as the
// tie-break for equal timestamps.
const questionOrder = ` ORDER BY ques.created DESC, ques.id DESC`

const (
	QuestionInsert = `INSERT INTO questions (title, body, body_text, owner) VALUES (?, ?, ?, ?)`

	QuestionDetail = `
		SELECT ques.id, ques.title, ques.body, ques.body_text, ques.owner,
		       u.github_username, u.avatar,
		       (SELECT COALESCE(SUM(vote_type), 0) FROM question_votes WHERE question_id = ques.id),
		       (SELECT COUNT(*) FROM answers WHERE question = ques.id),
		       ques.created
		FROM questions ques
		JOIN users u ON u.id = ques.owner
		WHERE ques.id = ?`

	RecentQuestions = questionSummary + questionOrder

	QuestionsByOwner = questionSummary + ` WHERE ques.owner = ?` + questionOrder

	SearchByText = questionSummary +
		` WHERE ques.title LIKE ? OR ques.body_text LIKE ?` + questionOrder

	SearchByUsername = questionSummary +
		` WHERE u.github_username LIKE ?` + questionOrder

	SearchByTagName = questionSummary + ` WHERE ques.id IN (
		SELECT qt.question_id FROM questions_tags qt
		JOIN tags t ON t.id = qt.tag_id
		WHERE t.tag_name LIKE ?)` + questionOrder

	SearchByAcceptance = questionSummary +
		` WHERE (SELECT COALESCE(MAX(is_accepted), 0) FROM answers WHERE question = ques.id) = ?` +
		questionOrder

	SearchByAnswerCount = questionSummary +
		` WHERE (SELECT COUNT(*) FROM answers WHERE question = ques.id) > ?` +
		questionOrder
)

// Tags.

const (
	TagInsert = `INSERT INTO tags (tag_name) VALUES (?) ON CONFLICT(tag_name) DO NOTHING`

	TagByName = `SELECT id, tag_name FROM tags WHERE tag_name = ?`

	// QuestionTagInsert tolerates an existing link so a tag repeated in
	// one request cannot fail the whole question.
	QuestionTagInsert = `INSERT INTO questions_tags (tag_id, question_id) VALUES (?, ?)
		ON CONFLICT(tag_id, question_id) DO NOTHING`

	// QuestionTags returns a question's tag names in link-insertion order.
	QuestionTags = `
		SELECT t.tag_name FROM tags t
		JOIN questions_tags qt ON qt.tag_id = t.id
		WHERE qt.question_id = ?
		ORDER BY qt.rowid ASC`

	// PopularTags ranks by usage frequency; name breaks ties so the order
	// is stable.
	PopularTags = `
		SELECT t.tag_name, COUNT(qt.question_id)
		FROM tags t
		JOIN questions_tags qt ON qt.tag_id = t.id
		WHERE t.tag_name LIKE ?
		GROUP BY t.id
		ORDER BY COUNT(qt.question_id) DESC, t.tag_name ASC`
)

// Answers.

const answerColumns = `
	SELECT ans.id, ans.body, ans.body_text, ans.question, ans.owner,
	       u.github_username, ans.is_accepted,
	       (SELECT COALESCE(SUM(vote_type), 0) FROM answer_votes WHERE answer_id = ans.id),
	       ans.created
	FROM answers ans
	JOIN users u ON u.id = ans.owner`

const (
	AnswerInsert = `INSERT INTO answers (body, body_text, question, owner) VALUES (?, ?, ?, ?)`

	AnswerByID = answerColumns + ` WHERE ans.id = ?`

	AnswersByQuestion = answerColumns +
		` WHERE ans.question = ? ORDER BY ans.is_accepted DESC, ans.created ASC, ans.id ASC`

	AnswersByOwner = answerColumns +
		` WHERE ans.owner = ? ORDER BY ans.created DESC, ans.id DESC`

	AnswerQuestionID = `SELECT question FROM answers WHERE id = ?`

	// AcceptClear and AcceptSet together enforce "at most one accepted
	// answer per question": clear every sibling, then mark one.
	AcceptClear = `UPDATE answers SET is_accepted = 0 WHERE question = ?`
	AcceptSet   = `UPDATE answers SET is_accepted = 1 WHERE id = ?`

	RejectAnswer = `UPDATE answers SET is_accepted = 0 WHERE id = ?`
)

// Votes. The question and answer vote spaces are disjoint; each operation
// exists once per space.

const (
	QuestionVoteByUser = `SELECT vote_type FROM question_votes WHERE question_id = ? AND user = ?`
	AnswerVoteByUser   = `SELECT vote_type FROM answer_votes WHERE answer_id = ? AND user = ?`

	QuestionVoteInsert = `INSERT INTO question_votes (vote_type, question_id, user) VALUES (?, ?, ?)`
	AnswerVoteInsert   = `INSERT INTO answer_votes (vote_type, answer_id, user) VALUES (?, ?, ?)`

	QuestionVoteUpdate = `UPDATE question_votes SET vote_type = ? WHERE question_id = ? AND user = ?`
	AnswerVoteUpdate   = `UPDATE answer_votes SET vote_type = ? WHERE answer_id = ? AND user = ?`

	QuestionVoteDelete = `DELETE FROM question_votes WHERE question_id = ? AND user = ?`
	AnswerVoteDelete   = `DELETE FROM answer_votes WHERE answer_id = ? AND user = ?`

	QuestionVoteCount = `SELECT COALESCE(SUM(vote_type), 0) FROM question_votes WHERE question_id = ?`
	AnswerVoteCount   = `SELECT COALESCE(SUM(vote_type), 0) FROM answer_votes WHERE answer_id = ?`
)

// Comments.

const (
	QuestionComments = `
		SELECT c.id, c.body, c.owner, u.github_username, c.question, c.created, c.last_modified
		FROM question_comments c
		JOIN users u ON u.id = c.owner
		WHERE c.question = ?
		ORDER BY c.created ASC, c.id ASC`

	AnswerComments = `
		SELECT c.id, c.body, c.owner, u.github_username, c.answer, c.created, c.last_modified
		FROM answer_comments c
		JOIN users u ON u.id = c.owner
		WHERE c.answer = ?
		ORDER BY c.created ASC, c.id ASC`

	QuestionCommentInsert = `
		INSERT INTO question_comments (body, owner, question, created, last_modified)
		VALUES (?, ?, ?, ?, ?)`

	AnswerCommentInsert = `
		INSERT INTO answer_comments (body, owner, answer, created, last_modified)
		VALUES (?, ?, ?, ?, ?)`
)
