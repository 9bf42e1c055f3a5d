package service

import (
	"context"
	"log/slog"

	"github.com/quillapp/quill-server/internal/domain"
	domainerrors "github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
	"github.com/quillapp/quill-server/internal/store"
)

// TagService manages tag CRUD.
type TagService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store *store.Store, logger *slog.Logger) *TagService {
	return &TagService{store: store, logger: logger}
}

// List returns the user's tags, name ascending.
func (s *TagService) List(ctx context.Context, userID string) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx, userID)
}

// Get returns one tag owned by the user.
func (s *TagService) Get(ctx context.Context, userID, tagID string) (*domain.Tag, error) {
	tag, err := s.store.GetTag(ctx, userID, tagID)
	if err != nil {
		if domainerrors.Is(err, store.ErrTagNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}
	return tag, nil
}

// Create persists a new tag from a guard-validated payload.
func (s *TagService) Create(ctx context.Context, payload map[string]any) (*domain.Tag, error) {
	userID, _ := stringField(payload, "userId")
	name, _ := stringField(payload, "name")

	tag := &domain.Tag{
		ID:     id.MustNew(),
		Name:   name,
		UserID: userID,
	}
	tag.InitTimestamps()

	if err := s.store.CreateTag(ctx, tag); err != nil {
		if domainerrors.Is(err, store.ErrTagExists) {
			return nil, domainerrors.Duplicatef("Tag `%s` already exists (name must be unique).", name)
		}
		return nil, err
	}
	return tag, nil
}

// Update applies a partial update to a tag owned by the user.
func (s *TagService) Update(ctx context.Context, userID, tagID string, payload map[string]any) (*domain.Tag, error) {
	tag, err := s.store.GetTag(ctx, userID, tagID)
	if err != nil {
		if domainerrors.Is(err, store.ErrTagNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}

	if name, ok := stringField(payload, "name"); ok {
		tag.Name = name
	}

	if err := s.store.UpdateTag(ctx, userID, tag); err != nil {
		switch {
		case domainerrors.Is(err, store.ErrTagNotFound):
			return nil, domainerrors.NotFound("Not Found")
		case domainerrors.Is(err, store.ErrTagExists):
			return nil, domainerrors.Duplicatef("Tag `%s` already exists (name must be unique).", tag.Name)
		}
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag owned by the user, pulling its id out of the
// tags array of every note that carried it.
func (s *TagService) Delete(ctx context.Context, userID, tagID string) error {
	if err := s.store.DeleteTag(ctx, userID, tagID); err != nil {
		if domainerrors.Is(err, store.ErrTagNotFound) {
			return domainerrors.NotFound("Not Found")
		}
		return err
	}

	if s.logger != nil {
		s.logger.Debug("Tag deleted", "tag_id", tagID, "user_id", userID)
	}
	return nil
}
