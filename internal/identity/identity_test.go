package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gopherit/internal/apperr"
	"gopherit/internal/config"
	"gopherit/internal/repository"
	"gopherit/internal/store"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Default()
	cfg.BcryptCost = bcrypt.MinCost // keep the test suite fast
	return NewManager(repository.NewContent(db), cfg)
}

func TestLogin(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	userID, err := m.CreateUser(ctx, "alice", "right-password", "alice@example.com")
	require.NoError(t, err)

	_, err = m.Login(ctx, "alice", "wrong-password")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))

	user, err := m.Login(ctx, "alice", "right-password")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestLoginUnknownUser(t *testing.T) {
	m := setupManager(t)

	_, err := m.Login(context.Background(), "nobody", "whatever")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))
}

func TestCreateUserDuplicatePropagates(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.CreateUser(ctx, "alice", "pw", "alice@example.com")
	require.NoError(t, err)

	_, err = m.CreateUser(ctx, "alice", "pw", "elsewhere@example.com")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicateUser))
}

func TestSessionRoundtrip(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	userID, err := m.CreateUser(ctx, "alice", "pw", "alice@example.com")
	require.NoError(t, err)

	token, err := m.CreateSession(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := m.UserBySession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.Password)

	_, err = m.UserBySession(ctx, "not-a-token")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeSessionNotFound))
}

func TestLogoutInvalidatesOnlyThatSession(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	userID, err := m.CreateUser(ctx, "alice", "pw", "alice@example.com")
	require.NoError(t, err)

	first, err := m.CreateSession(ctx, userID)
	require.NoError(t, err)
	second, err := m.CreateSession(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, m.Logout(ctx, first))

	_, err = m.UserBySession(ctx, first)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeSessionNotFound))

	// The user's other session is untouched.
	user, err := m.UserBySession(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestSessionExpiry(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	userID, err := m.CreateUser(ctx, "alice", "pw", "alice@example.com")
	require.NoError(t, err)

	token, err := m.CreateSession(ctx, userID)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(m.sessionTTL + time.Minute) }

	_, err = m.UserBySession(ctx, token)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeSessionNotFound))
}

func TestPasswordResetFlow(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.CreateUser(ctx, "alice", "old-password", "alice@example.com")
	require.NoError(t, err)

	token, err := m.RequestPasswordReset(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, m.ResetPassword(ctx, token, "new-password"))

	_, err = m.Login(ctx, "alice", "old-password")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidCredentials))

	user, err := m.Login(ctx, "alice", "new-password")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	// Single use: the consumed token is gone.
	err = m.ResetPassword(ctx, token, "another-password")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidResetToken))
}

func TestRequestPasswordResetUnknownEmail(t *testing.T) {
	m := setupManager(t)

	_, err := m.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeUserNotFound))
}

func TestResetPasswordUnknownToken(t *testing.T) {
	m := setupManager(t)

	err := m.ResetPassword(context.Background(), "bogus-token", "pw")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidResetToken))
}

func TestResetTokenExpiry(t *testing.T) {
	m := setupManager(t)
	ctx := context.Background()

	_, err := m.CreateUser(ctx, "alice", "pw", "alice@example.com")
	require.NoError(t, err)

	token, err := m.RequestPasswordReset(ctx, "alice@example.com")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(m.resetTTL + time.Minute) }

	err = m.ResetPassword(ctx, token, "new-password")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidResetToken))
}

func TestTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken()
		require.False(t, seen[token])
		seen[token] = true
	}
}
