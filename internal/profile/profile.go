// Package profile is the user slice: the mutable name/email/phone fields the
// profile screen shows and edits. It is kept in sync with the session on
// login and logout by the app aggregate.
package profile

import (
	"context"

	"store499_app/internal/api"
	"store499_app/internal/apperrors"
	"store499_app/internal/models"
	"store499_app/internal/session"
	"store499_app/internal/validate"
)

// Update carries the edited fields. Empty strings mean "leave unchanged";
// the merged result must still pass every field check.
type Update struct {
	Name  string
	Email string
	Phone string
}

type Store struct {
	api     *api.Client
	session *session.Store
	user    *models.User
}

func New(client *api.Client, sess *session.Store) *Store {
	return &Store{api: client, session: sess}
}

// Current returns a copy of the profile snapshot, or nil when logged out.
func (s *Store) Current() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) LoggedIn() bool { return s.user != nil }

// SetUser replaces the snapshot after a login or restore.
func (s *Store) SetUser(user models.User) {
	s.user = &user
}

// Reset clears the snapshot on logout.
func (s *Store) Reset() {
	s.user = nil
}

// UpdateProfile validates the merged fields, pushes them to the backend and
// commits the merge locally. On any validation failure nothing is mutated.
func (s *Store) UpdateProfile(ctx context.Context, upd Update) (models.User, error) {
	if s.user == nil {
		return models.User{}, apperrors.ErrAuthRequired
	}

	merged := *s.user
	if upd.Name != "" {
		merged.Name = upd.Name
	}
	if upd.Email != "" {
		merged.Email = upd.Email
	}
	if upd.Phone != "" {
		merged.Phone = upd.Phone
	}

	switch {
	case merged.Name == "" || merged.Email == "" || merged.Phone == "":
		return models.User{}, apperrors.Validation("form", "Please fill in all fields")
	case !validate.Email(merged.Email):
		return models.User{}, apperrors.Validation("email", "Please enter a valid email address")
	case !validate.Phone(merged.Phone):
		return models.User{}, apperrors.Validation("phone", "Please enter a valid 10-digit mobile number starting with 6-9")
	}

	err := s.api.UpdateUser(ctx, s.session.Token(), api.ProfileUpdate{
		Name:  merged.Name,
		Email: merged.Email,
		Phone: merged.Phone,
	})
	if err != nil {
		return models.User{}, err
	}

	s.user = &merged
	return merged, nil
}
