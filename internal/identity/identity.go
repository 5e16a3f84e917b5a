package identity

import (
	"context"
	"fmt"
	"time"

	"gopherit/internal/apperr"
	"gopherit/internal/config"
	"gopherit/internal/models"
	"gopherit/internal/repository"
)

// Manager implements login, session issuance and the password-reset workflow
// on top of the content repository. It is the only component that ever sees
// plaintext passwords, and stored hashes never leave it: every user record it
// returns has the hash stripped.
type Manager struct {
	repo       *repository.Content
	hasher     Hasher
	token      TokenFunc
	sessionTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

func NewManager(repo *repository.Content, cfg *config.Config) *Manager {
	return &Manager{
		repo:       repo,
		hasher:     NewHasher(cfg.BcryptCost),
		token:      NewToken,
		sessionTTL: cfg.SessionTTL,
		resetTTL:   cfg.ResetTokenTTL,
		now:        time.Now,
	}
}

// CreateUser hashes the password and delegates the insert. DuplicateUser
// propagates from the repository.
func (m *Manager) CreateUser(ctx context.Context, username, password, email string) (uint, error) {
	hash, err := m.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	return m.repo.CreateUser(ctx, username, hash, email)
}

// Login verifies the credentials. A missing user and a wrong password fail
// identically, so callers cannot probe which usernames exist.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := m.repo.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !m.hasher.Verify(password, user.Password) {
		return nil, apperr.New(apperr.CodeInvalidCredentials, "username or password incorrect")
	}

	user.Password = ""
	return user, nil
}

// CreateSession issues a fresh opaque token for the user and persists it with
// an expiry. Concurrent sessions for the same user are independent rows.
func (m *Manager) CreateSession(ctx context.Context, userID uint) (string, error) {
	token := m.token()
	if err := m.repo.CreateSession(ctx, userID, token, m.now().Add(m.sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// UserBySession resolves a session token to its user. Unknown and expired
// tokens both fail with SessionNotFound.
func (m *Manager) UserBySession(ctx context.Context, token string) (*models.User, error) {
	session, err := m.repo.SessionByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.ExpiresAt.Before(m.now()) {
		return nil, apperr.New(apperr.CodeSessionNotFound, "no session matches this token")
	}

	user, err := m.repo.UserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.New(apperr.CodeSessionNotFound, "no session matches this token")
	}

	user.Password = ""
	return user, nil
}

// Logout invalidates the session behind the given token. Other sessions of
// the same user stay valid.
func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.repo.DeleteSessionByToken(ctx, token)
}

// RequestPasswordReset issues a reset token for the account using this email
// and returns it for dispatch by the notification collaborator. When no
// account matches it fails with UserNotFound; whether that is surfaced or
// hidden from the requester is the caller's policy.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := m.repo.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.New(apperr.CodeUserNotFound, "no account uses this email address")
	}

	token := m.token()
	if err := m.repo.CreateResetToken(ctx, user.ID, token, m.now().Add(m.resetTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token and stores a new hash. The token is
// single use: it is deleted once the password is updated, and a second call
// with it fails with InvalidResetToken. Unknown and expired tokens
// short-circuit before any hashing.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := m.repo.ResetTokenByValue(ctx, token)
	if err != nil {
		return err
	}
	if reset == nil || reset.ExpiresAt.Before(m.now()) {
		return apperr.New(apperr.CodeInvalidResetToken, "reset token is unknown or expired")
	}

	hash, err := m.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := m.repo.UpdatePassword(ctx, reset.UserID, hash); err != nil {
		return err
	}
	return m.repo.DeleteResetToken(ctx, token)
}
