// Package session owns the authenticated identity: login, registration,
// restore from persistence and logout. While no session exists the app is in
// the guest state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"store499_app/internal/api"
	"store499_app/internal/apperrors"
	"store499_app/internal/kv"
	"store499_app/internal/models"
	"store499_app/internal/validate"
)

// PersistKey is the well-known key the session blob lives under.
const PersistKey = "user"

type Status int

const (
	StatusGuest Status = iota
	StatusAuthenticating
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "guest"
	}
}

// Store is the session state machine. Operations are dispatched from a
// single UI goroutine; a second login before the first resolves is not
// guarded against.
type Store struct {
	api     *api.Client
	persist kv.Store

	status Status
	user   *models.User
}

func New(client *api.Client, persist kv.Store) *Store {
	return &Store{api: client, persist: persist, status: StatusGuest}
}

func (s *Store) Status() Status { return s.status }

// Current returns a copy of the signed-in user, or nil for guests.
func (s *Store) Current() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token is the bearer credential attached to authenticated calls. Empty for
// guests.
func (s *Store) Token() string {
	if s.user == nil {
		return ""
	}
	return s.user.Token
}

func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.IsAdmin()
}

func (s *Store) IsSuperAdmin() bool {
	return s.user != nil && s.user.IsSuperAdmin()
}

// InitFromPersistence restores a previously persisted session without a
// network call. Trust-on-read: no freshness check happens at this layer.
// A missing blob leaves the store in the guest state and is not an error.
func (s *Store) InitFromPersistence(ctx context.Context) error {
	raw, err := s.persist.Get(ctx, PersistKey)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt blob behaves like no blob at all.
		log.Printf("⚠️ Discarding unreadable session blob: %v", err)
		_ = s.persist.Remove(ctx, PersistKey)
		return nil
	}

	s.user = &user
	s.status = StatusAuthenticated
	return nil
}

// Login validates the email shape client-side, then authenticates against
// the backend. On success the session is persisted and the store transitions
// to authenticated; on failure it returns to guest.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	if !validate.Email(email) {
		return models.User{}, apperrors.Validation("email", "Please enter a valid email address")
	}

	s.status = StatusAuthenticating
	user, err := s.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		s.status = StatusGuest
		return models.User{}, err
	}

	if err := s.commit(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Register creates an account and signs it in. Field checks mirror the
// registration form.
func (s *Store) Register(ctx context.Context, input api.RegisterInput) (models.User, error) {
	switch {
	case input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "":
		return models.User{}, apperrors.Validation("form", "Please fill in all fields")
	case !validate.Email(input.Email):
		return models.User{}, apperrors.Validation("email", "Please enter a valid email address")
	case !validate.Phone(input.Phone):
		return models.User{}, apperrors.Validation("phone", "Please enter a valid 10-digit mobile number starting with 6-9")
	case len(input.Password) < 6:
		return models.User{}, apperrors.Validation("password", "Password must be at least 6 characters")
	}

	s.status = StatusAuthenticating
	user, err := s.api.Register(ctx, input)
	if err != nil {
		s.status = StatusGuest
		return models.User{}, err
	}

	if err := s.commit(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the persisted blob and the in-memory state. Idempotent;
// always succeeds from the caller's point of view.
func (s *Store) Logout(ctx context.Context) {
	if err := s.persist.Remove(ctx, PersistKey); err != nil {
		log.Printf("⚠️ Could not clear persisted session: %v", err)
	}
	s.user = nil
	s.status = StatusGuest
}

func (s *Store) commit(ctx context.Context, user models.User) error {
	blob, err := json.Marshal(user)
	if err != nil {
		s.status = StatusGuest
		return fmt.Errorf("persist session: %w", err)
	}
	if err := s.persist.Set(ctx, PersistKey, string(blob)); err != nil {
		// The login itself succeeded; keep the session in memory.
		log.Printf("⚠️ Could not persist session: %v", err)
	}
	s.user = &user
	s.status = StatusAuthenticated
	return nil
}
