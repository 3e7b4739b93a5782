// Package store is the persistence facade for the forum: users, questions,
// answers, tags, votes and comments over a single SQLite database.
//
// # Contract conventions
//
//   - Every insert of a single row returns the store-assigned id.
//   - A required single-row fetch that finds nothing fails with NotFound;
//     the deliberate exceptions are UserBy and Vote, which are probes and
//     report absence through a boolean instead.
//   - Failures carry a Code (see errors.go) and an operation-specific
//     message; the store never retries and never swallows an error. The
//     one tolerated failure is the resolve-or-create tag insert, where a
//     duplicate is expected control flow.
//
// # Subjects
//
// Votes and comments target a subject: a question or an answer. The two
// subject spaces are disjoint and every such operation takes an isQuestion
// flag selecting the space; ids are never mixed across spaces.
//
// # Transactions
//
// Multi-statement operations, meaning CreateQuestion (content plus tag
// links), CastVote (probe plus insert-or-overwrite) and AcceptAnswer
// (parent lookup, sibling clear, set), each run in a transaction committed or
// rolled back on every exit path. Steps inside an operation run
// sequentially; the first failure aborts the remainder.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// The SQL text lives in internal/catalog; this package binds parameters
// and owns result normalization, so raw rows never leak to callers.
package store
