package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quillapp/quill-server/internal/auth"
	"github.com/quillapp/quill-server/internal/domain"
	domainerrors "github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
	"github.com/quillapp/quill-server/internal/store"
)

// UserService handles account registration and lookup.
type UserService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store, logger *slog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

// RegisterParams are the guard-validated registration fields.
type RegisterParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new account: hash the password, store the user,
// then seed the account with one blank note. Names are trimmed; email
// and password arrive exactly as validated.
func (s *UserService) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           id.MustNew(),
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		Email:        params.Email,
		PasswordHash: passwordHash,
	}
	user.InitTimestamps()

	if err := s.store.CreateUser(ctx, user); err != nil {
		if domainerrors.Is(err, store.ErrEmailExists) {
			return nil, domainerrors.Duplicatef("The email `%s` already exists.", params.Email)
		}
		return nil, err
	}

	// Seed the fresh account with an empty note so the editor has
	// something to open on first login.
	seed := &domain.Note{
		ID:       id.MustNew(),
		Title:    domain.DefaultNoteTitle,
		Document: domain.BlankDocument(),
		UserID:   user.ID,
	}
	seed.InitTimestamps()
	if err := s.store.CreateNote(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed note: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	}
	return user, nil
}

// Get returns a user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if domainerrors.Is(err, store.ErrUserNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}
	return user, nil
}
