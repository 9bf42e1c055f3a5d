package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/quillapp/quill-server/internal/domain"
)

// NoteFilter narrows a note listing. Zero values mean "no filter".
type NoteFilter struct {
	FolderID   string
	TagID      string
	SearchTerm string
}

// CreateNote stores a new note.
func (s *Store) CreateNote(ctx context.Context, note *domain.Note) error {
	if err := s.Notes.Create(ctx, note.ID, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// GetNote retrieves a note by ID, scoped to its owner.
func (s *Store) GetNote(ctx context.Context, userID, id string) (*domain.Note, error) {
	note, err := s.Notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	if note.UserID != userID {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// ListNotes returns the user's notes matching filter, sorted by
// updatedAt descending (most recently edited first). Title search is a
// case-folded substring match.
func (s *Store) ListNotes(ctx context.Context, userID string, filter NoteFilter) ([]*domain.Note, error) {
	fold := cases.Fold()
	var search string
	if filter.SearchTerm != "" {
		search = fold.String(filter.SearchTerm)
	}

	var notes []*domain.Note
	for note, err := range s.Notes.List(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		if note.UserID != userID {
			continue
		}
		if filter.FolderID != "" && note.FolderID != filter.FolderID {
			continue
		}
		if filter.TagID != "" && !slices.Contains(note.Tags, filter.TagID) {
			continue
		}
		if search != "" && !strings.Contains(fold.String(note.Title), search) {
			continue
		}
		notes = append(notes, note)
	}

	slices.SortFunc(notes, func(a, b *domain.Note) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return notes, nil
}

// UpdateNote replaces a note owned by userID.
func (s *Store) UpdateNote(ctx context.Context, userID string, note *domain.Note) error {
	if _, err := s.GetNote(ctx, userID, note.ID); err != nil {
		return err
	}

	note.Touch()
	if err := s.Notes.Update(ctx, note.ID, note); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// DeleteNote removes a note owned by userID.
func (s *Store) DeleteNote(ctx context.Context, userID, id string) error {
	if _, err := s.GetNote(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
