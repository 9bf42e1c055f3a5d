package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillapp/quill-server/internal/domain"
)

// CreateUser stores a new user. The email index is unique and
// case-insensitive; a clash returns ErrEmailExists.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	if err := s.Users.Create(ctx, user.ID, user); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.Users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address, case-insensitively.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.Users.GetByIndex(ctx, "email", email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// UpdateUser updates an existing user.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	user.Touch()
	if err := s.Users.Update(ctx, user.ID, user); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, ErrAlreadyExists):
			return ErrEmailExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
