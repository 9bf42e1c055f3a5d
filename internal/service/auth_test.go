package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/quillapp/quill-server/internal/errors"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerTestUser(t, env, "alice@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, badPassword := env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
		_, badEmail := env.auth.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "password123"})

		require.Error(t, badPassword)
		require.Error(t, badEmail)
		assert.ErrorIs(t, badPassword, domainerrors.ErrInvalidCredentials)
		assert.ErrorIs(t, badEmail, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, badPassword.Error(), badEmail.Error())
	})

	t.Run("malformed request rejected by validator", func(t *testing.T) {
		_, err := env.auth.Login(ctx, LoginRequest{Email: "not-an-email", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})
}

func TestRefreshTokens_Rotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerTestUser(t, env, "alice@example.com")

	login, err := env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := env.auth.RefreshTokens(ctx, RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, login.SessionID, refreshed.SessionID, "rotation keeps the session")

	// The old refresh token died with the rotation.
	_, err = env.auth.RefreshTokens(ctx, RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestLogout_RevokesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	registerTestUser(t, env, "alice@example.com")

	login, err := env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, login.SessionID))

	_, err = env.auth.RefreshTokens(ctx, RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestVerifyAccessToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID := registerTestUser(t, env, "alice@example.com")

	login, err := env.auth.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	user, claims, err := env.auth.VerifyAccessToken(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, userID, claims.UserID)

	_, _, err = env.auth.VerifyAccessToken(ctx, "v4.local.garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
