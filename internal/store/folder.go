package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/quillapp/quill-server/internal/domain"
)

// CreateFolder stores a new folder. Folder names are unique per owner;
// a clash returns ErrFolderExists.
func (s *Store) CreateFolder(ctx context.Context, folder *domain.Folder) error {
	if err := s.Folders.Create(ctx, folder.ID, folder); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrFolderExists
		}
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

// GetFolder retrieves a folder by ID, scoped to its owner. A folder
// owned by another user is indistinguishable from an absent one.
func (s *Store) GetFolder(ctx context.Context, userID, id string) (*domain.Folder, error) {
	folder, err := s.Folders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrFolderNotFound
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}
	if folder.UserID != userID {
		return nil, ErrFolderNotFound
	}
	return folder, nil
}

// ListFolders returns the user's folders sorted by name ascending.
func (s *Store) ListFolders(ctx context.Context, userID string) ([]*domain.Folder, error) {
	var folders []*domain.Folder
	for folder, err := range s.Folders.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list folders: %w", err)
		}
		if folder.UserID == userID {
			folders = append(folders, folder)
		}
	}

	slices.SortFunc(folders, func(a, b *domain.Folder) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return folders, nil
}

// UpdateFolder replaces a folder owned by userID.
func (s *Store) UpdateFolder(ctx context.Context, userID string, folder *domain.Folder) error {
	// Ownership check first so a rename can't collide before 404ing.
	if _, err := s.GetFolder(ctx, userID, folder.ID); err != nil {
		return err
	}

	folder.Touch()
	if err := s.Folders.Update(ctx, folder.ID, folder); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return ErrFolderNotFound
		case errors.Is(err, ErrAlreadyExists):
			return ErrFolderExists
		}
		return fmt.Errorf("update folder: %w", err)
	}
	return nil
}

// DeleteFolder removes a folder owned by userID and clears the folder
// reference on every note that pointed at it. Delete and cascade run in
// a single transaction so a crash can't leave dangling references.
func (s *Store) DeleteFolder(ctx context.Context, userID, folderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(folderPrefix + folderID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrFolderNotFound
		}
		if err != nil {
			return fmt.Errorf("get folder: %w", err)
		}

		var folder domain.Folder
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &folder)
		}); err != nil {
			return fmt.Errorf("unmarshal folder: %w", err)
		}
		if folder.UserID != userID {
			return ErrFolderNotFound
		}

		nameKey := []byte(folderPrefix + "idx:owner_name:" + ownerNameKey(folder.UserID, folder.Name))
		if err := txn.Delete(nameKey); err != nil {
			return fmt.Errorf("delete folder index: %w", err)
		}
		if err := txn.Delete([]byte(folderPrefix + folderID)); err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}

		return clearNoteFolderRefs(txn, userID, folderID)
	})
}

// clearNoteFolderRefs clears folderID from the owner's notes within txn.
func clearNoteFolderRefs(txn *badger.Txn, userID, folderID string) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(notePrefix)

	// Collect first, write after the iterator closes.
	var stale []*domain.Note

	it := txn.NewIterator(opts)
	for it.Seek([]byte(notePrefix)); it.ValidForPrefix([]byte(notePrefix)); it.Next() {
		var note domain.Note
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &note)
		})
		if err != nil {
			it.Close()
			return fmt.Errorf("unmarshal note: %w", err)
		}
		if note.UserID == userID && note.FolderID == folderID {
			stale = append(stale, &note)
		}
	}
	it.Close()

	for _, note := range stale {
		note.FolderID = ""
		note.Touch()
		data, err := json.Marshal(note)
		if err != nil {
			return fmt.Errorf("marshal note: %w", err)
		}
		if err := txn.Set([]byte(notePrefix+note.ID), data); err != nil {
			return fmt.Errorf("update note: %w", err)
		}
	}
	return nil
}

// FolderExists reports whether userID owns a folder with the given ID.
func (s *Store) FolderExists(ctx context.Context, userID, folderID string) (bool, error) {
	_, err := s.GetFolder(ctx, userID, folderID)
	if errors.Is(err, ErrFolderNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
