// Package service contains the orchestration layer between HTTP
// handlers and the store. Handlers run the request-pipeline guards and
// build payloads; services perform the storage call and translate
// store sentinels into domain errors.
package service

import (
	"context"
	"log/slog"

	"github.com/quillapp/quill-server/internal/domain"
	domainerrors "github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
	"github.com/quillapp/quill-server/internal/store"
)

// FolderService manages folder CRUD.
type FolderService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFolderService creates a new folder service.
func NewFolderService(store *store.Store, logger *slog.Logger) *FolderService {
	return &FolderService{store: store, logger: logger}
}

// List returns the user's folders, name ascending.
func (s *FolderService) List(ctx context.Context, userID string) ([]*domain.Folder, error) {
	return s.store.ListFolders(ctx, userID)
}

// Get returns one folder owned by the user.
func (s *FolderService) Get(ctx context.Context, userID, folderID string) (*domain.Folder, error) {
	folder, err := s.store.GetFolder(ctx, userID, folderID)
	if err != nil {
		if domainerrors.Is(err, store.ErrFolderNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}
	return folder, nil
}

// Create persists a new folder from a guard-validated payload.
func (s *FolderService) Create(ctx context.Context, payload map[string]any) (*domain.Folder, error) {
	userID, _ := stringField(payload, "userId")
	name, _ := stringField(payload, "name")
	parent, _ := stringField(payload, "parent")

	folder := &domain.Folder{
		ID:     id.MustNew(),
		Name:   name,
		UserID: userID,
		Parent: parent,
	}
	folder.InitTimestamps()

	if err := s.store.CreateFolder(ctx, folder); err != nil {
		if domainerrors.Is(err, store.ErrFolderExists) {
			return nil, domainerrors.Duplicatef("Folder `%s` already exists (name must be unique).", name)
		}
		return nil, err
	}
	return folder, nil
}

// Update applies a partial update to a folder owned by the user. Only
// fields present in the payload change.
func (s *FolderService) Update(ctx context.Context, userID, folderID string, payload map[string]any) (*domain.Folder, error) {
	folder, err := s.store.GetFolder(ctx, userID, folderID)
	if err != nil {
		if domainerrors.Is(err, store.ErrFolderNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}

	if name, ok := stringField(payload, "name"); ok {
		folder.Name = name
	}
	if parent, ok := stringField(payload, "parent"); ok {
		folder.Parent = parent
	}

	if err := s.store.UpdateFolder(ctx, userID, folder); err != nil {
		switch {
		case domainerrors.Is(err, store.ErrFolderNotFound):
			return nil, domainerrors.NotFound("Not Found")
		case domainerrors.Is(err, store.ErrFolderExists):
			return nil, domainerrors.Duplicatef("Folder `%s` already exists (name must be unique).", folder.Name)
		}
		return nil, err
	}
	return folder, nil
}

// Delete removes a folder owned by the user, clearing the folder
// reference on its notes.
func (s *FolderService) Delete(ctx context.Context, userID, folderID string) error {
	if err := s.store.DeleteFolder(ctx, userID, folderID); err != nil {
		if domainerrors.Is(err, store.ErrFolderNotFound) {
			return domainerrors.NotFound("Not Found")
		}
		return err
	}

	if s.logger != nil {
		s.logger.Debug("Folder deleted", "folder_id", folderID, "user_id", userID)
	}
	return nil
}
