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

// CreateTag stores a new tag. Tag names are unique per owner; a clash
// returns ErrTagExists.
func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) error {
	if err := s.Tags.Create(ctx, tag.ID, tag); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return ErrTagExists
		}
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// GetTag retrieves a tag by ID, scoped to its owner.
func (s *Store) GetTag(ctx context.Context, userID, id string) (*domain.Tag, error) {
	tag, err := s.Tags.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	if tag.UserID != userID {
		return nil, ErrTagNotFound
	}
	return tag, nil
}

// ListTags returns the user's tags sorted by name ascending.
func (s *Store) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for tag, err := range s.Tags.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		if tag.UserID == userID {
			tags = append(tags, tag)
		}
	}

	slices.SortFunc(tags, func(a, b *domain.Tag) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return tags, nil
}

// UpdateTag replaces a tag owned by userID.
func (s *Store) UpdateTag(ctx context.Context, userID string, tag *domain.Tag) error {
	if _, err := s.GetTag(ctx, userID, tag.ID); err != nil {
		return err
	}

	tag.Touch()
	if err := s.Tags.Update(ctx, tag.ID, tag); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return ErrTagNotFound
		case errors.Is(err, ErrAlreadyExists):
			return ErrTagExists
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// DeleteTag removes a tag owned by userID and pulls its ID out of the
// tags array of every note that carried it, in a single transaction.
func (s *Store) DeleteTag(ctx context.Context, userID, tagID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tagPrefix + tagID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrTagNotFound
		}
		if err != nil {
			return fmt.Errorf("get tag: %w", err)
		}

		var tag domain.Tag
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &tag)
		}); err != nil {
			return fmt.Errorf("unmarshal tag: %w", err)
		}
		if tag.UserID != userID {
			return ErrTagNotFound
		}

		nameKey := []byte(tagPrefix + "idx:owner_name:" + ownerNameKey(tag.UserID, tag.Name))
		if err := txn.Delete(nameKey); err != nil {
			return fmt.Errorf("delete tag index: %w", err)
		}
		if err := txn.Delete([]byte(tagPrefix + tagID)); err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}

		return clearNoteTagRefs(txn, userID, tagID)
	})
}

// clearNoteTagRefs removes tagID from the owner's notes within txn.
func clearNoteTagRefs(txn *badger.Txn, userID, tagID string) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(notePrefix)

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
		if note.UserID == userID && slices.Contains(note.Tags, tagID) {
			stale = append(stale, &note)
		}
	}
	it.Close()

	for _, note := range stale {
		note.Tags = slices.DeleteFunc(note.Tags, func(id string) bool {
			return id == tagID
		})
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

// CountOwnedTags counts how many of the given tag IDs exist and belong
// to userID. Duplicate IDs are counted once.
func (s *Store) CountOwnedTags(ctx context.Context, userID string, ids []string) (int, error) {
	seen := make(map[string]bool, len(ids))
	count := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		_, err := s.GetTag(ctx, userID, id)
		if errors.Is(err, ErrTagNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}
