package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillapp/quill-server/internal/domain"
	"github.com/quillapp/quill-server/internal/id"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func newTestUser(t *testing.T, s *Store, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           id.MustNew(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "$argon2id$fake",
	}
	user.InitTimestamps()
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func newTestFolder(t *testing.T, s *Store, userID, name string) *domain.Folder {
	t.Helper()

	folder := &domain.Folder{
		ID:     id.MustNew(),
		Name:   name,
		UserID: userID,
	}
	folder.InitTimestamps()
	require.NoError(t, s.CreateFolder(context.Background(), folder))
	return folder
}

func newTestTag(t *testing.T, s *Store, userID, name string) *domain.Tag {
	t.Helper()

	tag := &domain.Tag{
		ID:     id.MustNew(),
		Name:   name,
		UserID: userID,
	}
	tag.InitTimestamps()
	require.NoError(t, s.CreateTag(context.Background(), tag))
	return tag
}

func newTestNote(t *testing.T, s *Store, userID string, mutate func(*domain.Note)) *domain.Note {
	t.Helper()

	note := &domain.Note{
		ID:       id.MustNew(),
		Title:    domain.DefaultNoteTitle,
		Document: domain.BlankDocument(),
		UserID:   userID,
	}
	if mutate != nil {
		mutate(note)
	}
	note.InitTimestamps()
	require.NoError(t, s.CreateNote(context.Background(), note))
	return note
}
