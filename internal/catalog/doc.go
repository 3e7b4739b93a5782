// Package catalog is the fixed set of named, parameterized SQL statements
// the store executes, plus the embedded schema-initialization script.
//
// The catalog is a versioned contract: the store refers to statements by
// name and binds parameters positionally. Substring filters are bound
// pre-wrapped ("%value%") by the store, never here. Every statement that
// returns a list carries an explicit ORDER BY so results are deterministic.
package catalog
