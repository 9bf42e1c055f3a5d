package service

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillapp/quill-server/internal/auth"
	"github.com/quillapp/quill-server/internal/store"
	"github.com/quillapp/quill-server/internal/validation"
)

type testEnv struct {
	store    *store.Store
	users    *UserService
	folders  *FolderService
	notes    *NoteService
	tags     *TagService
	auth     *AuthService
	sessions *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	tokens, err := auth.NewTokenService(hex.EncodeToString(key), 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	sessions := NewSessionService(s, tokens, nil)
	return &testEnv{
		store:    s,
		users:    NewUserService(s, nil),
		folders:  NewFolderService(s, nil),
		notes:    NewNoteService(s, nil),
		tags:     NewTagService(s, nil),
		auth:     NewAuthService(s, tokens, sessions, validation.New(), nil),
		sessions: sessions,
	}
}

func registerTestUser(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	user, err := env.users.Register(context.Background(), RegisterParams{
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user.ID
}
