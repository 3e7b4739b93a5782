// Package search classifies free-form search strings into typed question
// filters using a leading-sigil grammar. It is pure: no I/O, no database.
package search
