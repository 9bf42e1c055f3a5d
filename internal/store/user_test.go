package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillapp/quill-server/internal/domain"
	"github.com/quillapp/quill-server/internal/id"
)

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newTestUser(t, s, "alice@example.com")

	dup := &domain.User{ID: id.MustNew(), Email: "Alice@Example.COM"}
	dup.InitTimestamps()
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := newTestUser(t, s, "bob@example.com")

	found, err := s.GetUserByEmail(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	newTestUser(t, s, "first@example.com")
	second := newTestUser(t, s, "second@example.com")

	second.Email = "first@example.com"
	err := s.UpdateUser(ctx, second)
	assert.ErrorIs(t, err, ErrEmailExists)

	// A no-op email update must not conflict with itself.
	second.Email = "second@example.com"
	second.FirstName = "Renamed"
	require.NoError(t, s.UpdateUser(ctx, second))

	got, err := s.GetUser(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FirstName)
}
