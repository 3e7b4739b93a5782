package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which question filter a search expression selects.
type Kind int

const (
	// KindText matches the expression against question titles and body text.
	KindText Kind = iota

	// KindUsername matches the expression against owner usernames.
	KindUsername

	// KindTagName matches the expression against tag names.
	KindTagName

	// KindAcceptance filters questions by whether they have an accepted
	// answer.
	KindAcceptance

	// KindAnswerCount filters questions by how many answers they have.
	KindAnswerCount
)

// String returns the filter kind's name for logging and test output.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindUsername:
		return "username"
	case KindTagName:
		return "tag"
	case KindAcceptance:
		return "acceptance"
	case KindAnswerCount:
		return "answer-count"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Filter is the classified form of a raw search expression.
//
// Expr is set for the substring-matched kinds (KindText, KindUsername,
// KindTagName). Accepted is set for KindAcceptance and AnswerCount for
// KindAnswerCount.
type Filter struct {
	Kind        Kind
	Expr        string
	Accepted    bool
	AnswerCount int
}

// Parse classifies a raw search string into exactly one Filter.
//
// Only the first character is inspected; a sigil appearing later in the
// string has no effect. The grammar:
//
//	@name      questions owned by users whose username contains "name"
//	#tag       questions tagged with a tag whose name contains "tag"
//	:accepted  questions with an accepted answer (any letter case);
//	           any other token selects questions without one
//	>n         questions with more than n answers
//	anything   free-text match against title and body text
//
// Whitespace is not trimmed; "@ bob" searches for usernames containing
// " bob". A non-numeric remainder after '>' is an error.
func Parse(raw string) (Filter, error) {
	if raw == "" {
		return Filter{Kind: KindText, Expr: ""}, nil
	}

	rest := raw[1:]
	switch raw[0] {
	case '@':
		return Filter{Kind: KindUsername, Expr: rest}, nil
	case '#':
		return Filter{Kind: KindTagName, Expr: rest}, nil
	case ':':
		return Filter{Kind: KindAcceptance, Accepted: strings.EqualFold(rest, "accepted")}, nil
	case '>':
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Filter{}, fmt.Errorf("answer count filter %q: not a number", raw)
		}
		return Filter{Kind: KindAnswerCount, AnswerCount: n}, nil
	default:
		return Filter{Kind: KindText, Expr: raw}, nil
	}
}
