// Package addresses manages the saved store addresses behind /api/stores.
// The local slice mirrors the backend after every successful call.
package addresses

import (
	"context"

	"store499_app/internal/api"
	"store499_app/internal/apperrors"
	"store499_app/internal/models"
	"store499_app/internal/session"
	"store499_app/internal/validate"
)

type Store struct {
	api     *api.Client
	session *session.Store
	stores  []models.StoreAddress
	loading bool
	lastErr error
}

func New(client *api.Client, sess *session.Store) *Store {
	return &Store{api: client, session: sess}
}

func (s *Store) Loading() bool { return s.loading }

func (s *Store) Err() error { return s.lastErr }

// All returns a copy of the cached addresses.
func (s *Store) All() []models.StoreAddress {
	out := make([]models.StoreAddress, len(s.stores))
	copy(out, s.stores)
	return out
}

func (s *Store) Fetch(ctx context.Context) error {
	s.loading = true
	s.lastErr = nil

	stores, err := s.api.ListStores(ctx, s.session.Token())
	s.loading = false
	if err != nil {
		s.lastErr = err
		return err
	}

	s.stores = stores
	return nil
}

// Add validates the new address, creates it remotely and appends the created
// row (with its server-assigned id) to the local slice.
func (s *Store) Add(ctx context.Context, addr models.StoreAddress) (models.StoreAddress, error) {
	if err := validateAddress(addr); err != nil {
		return models.StoreAddress{}, err
	}

	created, err := s.api.AddStore(ctx, s.session.Token(), addr)
	if err != nil {
		return models.StoreAddress{}, err
	}

	s.stores = append(s.stores, created)
	return created, nil
}

// Update replaces the address with the matching id, locally and remotely.
func (s *Store) Update(ctx context.Context, id string, addr models.StoreAddress) (models.StoreAddress, error) {
	if err := validateAddress(addr); err != nil {
		return models.StoreAddress{}, err
	}

	updated, err := s.api.UpdateStore(ctx, s.session.Token(), id, addr)
	if err != nil {
		return models.StoreAddress{}, err
	}

	for i := range s.stores {
		if s.stores[i].ID == updated.ID {
			s.stores[i] = updated
		}
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteStore(ctx, s.session.Token(), id); err != nil {
		return err
	}

	kept := s.stores[:0]
	for _, addr := range s.stores {
		if addr.ID != id {
			kept = append(kept, addr)
		}
	}
	s.stores = kept
	return nil
}

func validateAddress(addr models.StoreAddress) error {
	switch {
	case addr.Name == "" || addr.Phone == "" || addr.Address == "" ||
		addr.City == "" || addr.State == "" || addr.Pincode == "":
		return apperrors.Validation("form", "Please fill in all fields")
	case !validate.Phone(addr.Phone):
		return apperrors.Validation("phone", "Please enter a valid 10-digit mobile number starting with 6-9")
	case !validate.Pincode(addr.Pincode):
		return apperrors.Validation("pincode", "Please enter a valid 6-digit pincode")
	}
	return nil
}
