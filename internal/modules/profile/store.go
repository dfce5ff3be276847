// README: Profile store backed by PostgreSQL.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehire/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// docColumns maps document slots to their url/verified column pairs. Column
// names come from this whitelist only; never from request input.
var docColumns = map[DocType][2]string{
	DocLicense: {"license_doc_url", "license_verified"},
	DocAadhaar: {"aadhaar_doc_url", "aadhaar_verified"},
	DocPan:     {"pan_doc_url", "pan_verified"},
	DocPhoto:   {"photo_url", "photo_verified"},
	DocAccount: {"account_doc_url", "account_verified"},
}

func (s *Store) Insert(ctx context.Context, p *Profile) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO profiles (id, name, email, phone, role, is_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID), p.Name, p.Email, p.Phone, string(p.Role), p.IsVerified, p.CreatedAt)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, phone, role, is_verified,
		       license_doc_url, license_verified,
		       aadhaar_doc_url, aadhaar_verified,
		       pan_doc_url, pan_verified,
		       photo_url, photo_verified,
		       account_doc_url, account_verified,
		       created_at
		FROM profiles
		WHERE id = $1`, string(id))

	var p Profile
	var urls [5]sql.NullString
	var verified [5]bool

	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Role, &p.IsVerified,
		&urls[0], &verified[0],
		&urls[1], &verified[1],
		&urls[2], &verified[2],
		&urls[3], &verified[3],
		&urls[4], &verified[4],
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Documents = make(map[DocType]Document, len(RequiredDocs))
	for i, d := range RequiredDocs {
		if urls[i].Valid && urls[i].String != "" {
			p.Documents[d] = Document{URL: urls[i].String, Verified: verified[i]}
		}
	}
	return &p, nil
}

func (s *Store) UpdateIdentity(ctx context.Context, id types.ID, name, phone string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE profiles SET name = $2, phone = $3 WHERE id = $1`,
		string(id), name, phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDocumentURL records a fresh upload. A re-upload resets the slot to
// unverified so the admin reviews the new file.
func (s *Store) SetDocumentURL(ctx context.Context, id types.ID, doc DocType, url string) error {
	cols, ok := docColumns[doc]
	if !ok {
		return ErrBadRequest
	}
	tag, err := s.db.Exec(ctx, fmt.Sprintf(`
		UPDATE profiles SET %s = $2, %s = FALSE WHERE id = $1`, cols[0], cols[1]),
		string(id), url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetDocumentVerified(ctx context.Context, id types.ID, doc DocType, v bool) error {
	cols, ok := docColumns[doc]
	if !ok {
		return ErrBadRequest
	}
	tag, err := s.db.Exec(ctx, fmt.Sprintf(`
		UPDATE profiles SET %s = $2 WHERE id = $1`, cols[1]),
		string(id), v)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetVerified(ctx context.Context, id types.ID, v bool) error {
	tag, err := s.db.Exec(ctx, `UPDATE profiles SET is_verified = $2 WHERE id = $1`, string(id), v)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
