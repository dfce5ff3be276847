// README: Auth service: sign-up/in/out, verification codes, password reset.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"drivehire/internal/modules/profile"
	"drivehire/internal/types"
)

var (
	ErrBadRequest         = errors.New("auth: bad request")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidCode        = errors.New("auth: invalid or expired code")
	ErrTokenRevoked       = errors.New("auth: token revoked")
)

const minPasswordLen = 8

// ProfileWriter is the slice of the profile service auth needs.
type ProfileWriter interface {
	GetOrCreate(ctx context.Context, id types.ID, email string, role profile.Role) (*profile.Profile, error)
	MarkVerified(ctx context.Context, id types.ID) error
}

// CodeSender delivers a verification code to the user. Email and SMS
// transports both satisfy this.
type CodeSender interface {
	Send(ctx context.Context, email, code string) error
}

// CredentialStore abstracts credential persistence so the service can be
// exercised without a database.
type CredentialStore interface {
	Insert(ctx context.Context, c *Credential) error
	GetByEmail(ctx context.Context, email string) (*Credential, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type Service struct {
	store    CredentialStore
	tokens   *TokenManager
	codes    CodeStore
	revoker  Revoker
	sessions *Sessions
	profiles ProfileWriter
	sender   CodeSender
}

func NewService(store CredentialStore, tokens *TokenManager, codes CodeStore, revoker Revoker, sessions *Sessions, profiles ProfileWriter, sender CodeSender) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		codes:    codes,
		revoker:  revoker,
		sessions: sessions,
		profiles: profiles,
		sender:   sender,
	}
}

type SignUpCommand struct {
	Email    string
	Password string
	Role     profile.Role
}

type Session struct {
	UserID types.ID
	Role   string
	Token  string
}

func (s *Service) SignUp(ctx context.Context, cmd SignUpCommand) (*Session, error) {
	email := normalizeEmail(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrBadRequest
	}
	if len(cmd.Password) < minPasswordLen {
		return nil, ErrBadRequest
	}
	role := cmd.Role
	if !role.Valid() {
		role = profile.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := newID()
	cred := &Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, cred); err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetOrCreate(ctx, userID, email, role); err != nil {
		return nil, err
	}
	if err := s.SendCode(ctx, email); err != nil {
		return nil, err
	}
	return s.issueSession(userID, string(role))
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	cred, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(cred.UserID, cred.Role)
}

// SignOut blacklists the token's jti for its remaining lifetime.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}
	s.sessions.publish(Event{Kind: EventSignedOut, UserID: types.ID(claims.Subject), Role: claims.Role})
	return nil
}

func (s *Service) SendCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return ErrBadRequest
	}
	code, err := s.codes.Issue(ctx, email)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, email, code)
}

// VerifyCode consumes the code and marks the account's profile verified.
func (s *Service) VerifyCode(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	ok, err := s.codes.Check(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	cred, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.profiles.MarkVerified(ctx, cred.UserID)
}

func (s *Service) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if len(newPassword) < minPasswordLen {
		return ErrBadRequest
	}
	ok, err := s.codes.Check(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, email, string(hash))
}

// VerifyToken parses and checks revocation. The HTTP middleware calls this on
// every authenticated request.
func (s *Service) VerifyToken(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *Service) issueSession(userID types.ID, role string) (*Session, error) {
	token, _, err := s.tokens.Issue(userID, role)
	if err != nil {
		return nil, err
	}
	s.sessions.publish(Event{Kind: EventSignedIn, UserID: userID, Role: role})
	return &Session{UserID: userID, Role: role, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newID() types.ID {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return types.ID(hex.EncodeToString(buf))
}
