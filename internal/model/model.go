// Package model defines the entity shapes returned by the store.
//
// Every fetch operation returns one of these types; raw database rows never
// cross the store boundary.
package model

import "time"

// User is a registered forum user.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Location    string    `json:"location,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Role        string    `json:"role"`
	Created     time.Time `json:"created"`
}

// Profile holds the user-editable fields of a User.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// Question is the summary row used in listings and search results.
type Question struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	OwnerAvatar string    `json:"owner_avatar"`
	VoteCount   int       `json:"vote_count"`
	AnswerCount int       `json:"answer_count"`
	Created     time.Time `json:"created"`
}

// QuestionDetail is the denormalized single-question view: the question body
// joined with its owner and aggregate counts.
type QuestionDetail struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	BodyText    string    `json:"body_text"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	OwnerAvatar string    `json:"owner_avatar"`
	VoteCount   int       `json:"vote_count"`
	AnswerCount int       `json:"answer_count"`
	Created     time.Time `json:"created"`
}

// NewQuestion carries the caller-supplied content of a question to be created.
// BodyText is the plain-text rendering of Body used for free-text search.
type NewQuestion struct {
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	BodyText string   `json:"body_text" yaml:"body_text"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// Answer is a stored answer with its owner and vote aggregate.
type Answer struct {
	ID         int64     `json:"id"`
	Body       string    `json:"body"`
	BodyText   string    `json:"body_text"`
	QuestionID int64     `json:"question_id"`
	OwnerID    int64     `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	Accepted   bool      `json:"accepted"`
	VoteCount  int       `json:"vote_count"`
	Created    time.Time `json:"created"`
}

// Tag is a lazily created, never duplicated label.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TagCount is a tag name with its usage frequency.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VoteStatus reports whether a user has voted on a subject, and with what
// type. Type is meaningful only when Voted is true.
type VoteStatus struct {
	Voted bool `json:"voted"`
	Type  int  `json:"type"`
}

// Comment is a stored comment joined with its author's identity.
type Comment struct {
	ID           int64     `json:"id"`
	Body         string    `json:"body"`
	OwnerID      int64     `json:"owner_id"`
	OwnerName    string    `json:"owner_name"`
	SubjectID    int64     `json:"subject_id"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
}

// NewComment carries a comment to be saved. Created is supplied by the
// caller and doubles as the initial last-modified time; comments are
// append-only at this layer.
type NewComment struct {
	Body      string    `json:"body"`
	OwnerID   int64     `json:"owner_id"`
	SubjectID int64     `json:"subject_id"`
	Created   time.Time `json:"created"`
}
