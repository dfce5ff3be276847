// README: Profile service: get-or-create, identity updates, document verification.
package profile

import (
	"context"
	"errors"
	"time"

	"drivehire/internal/types"
)

var (
	ErrNotFound   = errors.New("profile: not found")
	ErrBadRequest = errors.New("profile: bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Profile, error) {
	return s.store.Get(ctx, id)
}

// GetOrCreate returns the stored profile, inserting a minimal row on first
// access. Creation is explicit here, not a side effect hidden in the store.
func (s *Service) GetOrCreate(ctx context.Context, id types.ID, email string, role Role) (*Profile, error) {
	p, err := s.store.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if !role.Valid() {
		role = RoleCustomer
	}
	p = &Profile{
		ID:        id,
		Email:     email,
		Role:      role,
		Documents: map[DocType]Document{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateCommand struct {
	Name  string
	Phone string
}

func (s *Service) Update(ctx context.Context, id types.ID, cmd UpdateCommand) (*Profile, error) {
	if cmd.Name == "" {
		return nil, ErrBadRequest
	}
	if err := s.store.UpdateIdentity(ctx, id, cmd.Name, cmd.Phone); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// RecordDocument attaches a freshly uploaded file URL to a document slot.
func (s *Service) RecordDocument(ctx context.Context, id types.ID, doc DocType, url string) error {
	if !doc.Valid() || url == "" {
		return ErrBadRequest
	}
	return s.store.SetDocumentURL(ctx, id, doc, url)
}

// VerifyDocument flips a single slot's verification flag. Admin only; the
// handler layer enforces the role.
func (s *Service) VerifyDocument(ctx context.Context, id types.ID, doc DocType, verified bool) error {
	if !doc.Valid() {
		return ErrBadRequest
	}
	return s.store.SetDocumentVerified(ctx, id, doc, verified)
}

func (s *Service) MarkVerified(ctx context.Context, id types.ID) error {
	return s.store.SetVerified(ctx, id, true)
}

// DocumentsVerified reports whether the driver may claim trips. A missing
// profile is simply an unverified driver, not an error.
func (s *Service) DocumentsVerified(ctx context.Context, driverID types.ID) (bool, error) {
	p, err := s.store.Get(ctx, driverID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.DocumentsVerified(), nil
}
