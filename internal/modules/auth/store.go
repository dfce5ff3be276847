// README: Credential store backed by PostgreSQL.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"drivehire/internal/types"
)

type Credential struct {
	UserID       types.ID
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, c *Credential) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO credentials (user_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(c.UserID), c.Email, c.PasswordHash, c.Role, c.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, email, password_hash, role, created_at
		FROM credentials
		WHERE email = $1`, email)

	var c Credential
	err := row.Scan(&c.UserID, &c.Email, &c.PasswordHash, &c.Role, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE credentials SET password_hash = $2 WHERE email = $1`,
		email, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidCredentials
	}
	return nil
}
