package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parnab/overflow/internal/catalog"
	"github.com/parnab/overflow/internal/model"
)

// CreateUser inserts a new user and returns the store-assigned id.
// Returns a Duplicate error if the username is already taken.
func (s *Store) CreateUser(ctx context.Context, username, avatarURL string) (int64, error) {
	res, err := s.db.ExecContext(ctx, catalog.UserInsert, username, avatarURL)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, duplicate("user already exists", err)
		}
		return 0, driverError("user insertion failed", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, driverError("user insertion failed", err)
	}

	s.log.Debug().Int64("id", id).Str("username", username).Msg("user created")
	return id, nil
}

// UserBy looks up a user by one of the permitted identifying fields
// ("id", "github_username", "email").
//
// This is a probe, not a fetch: absence is not an error. The boolean
// reports whether a user was found.
func (s *Store) UserBy(ctx context.Context, field string, value any) (model.User, bool, error) {
	stmt, ok := catalog.UserBy(field)
	if !ok {
		return model.User{}, false, invalidArgument("unknown user lookup field "+field, nil)
	}

	var u model.User
	err := s.db.QueryRowContext(ctx, stmt, value).Scan(
		&u.ID, &u.Username, &u.Avatar, &u.DisplayName,
		&u.Email, &u.Location, &u.Bio, &u.Role, &u.Created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, driverError("user lookup failed", err)
	}

	return u, true, nil
}

// UpdateUserProfile overwrites the user-editable profile fields. An empty
// bio is stored as the empty string, never null.
func (s *Store) UpdateUserProfile(ctx context.Context, userID int64, p model.Profile) error {
	_, err := s.db.ExecContext(ctx, catalog.UserUpdate,
		p.Name, p.Email, p.Location, p.Bio, userID)
	if err != nil {
		return updateFailed("user update failed", err)
	}
	return nil
}
