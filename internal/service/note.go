package service

import (
	"context"
	"log/slog"

	"github.com/quillapp/quill-server/internal/domain"
	domainerrors "github.com/quillapp/quill-server/internal/errors"
	"github.com/quillapp/quill-server/internal/id"
	"github.com/quillapp/quill-server/internal/store"
)

// NoteService manages note CRUD.
type NoteService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewNoteService creates a new note service.
func NewNoteService(store *store.Store, logger *slog.Logger) *NoteService {
	return &NoteService{store: store, logger: logger}
}

// List returns the user's notes matching filter, most recently updated
// first.
func (s *NoteService) List(ctx context.Context, userID string, filter store.NoteFilter) ([]*domain.Note, error) {
	return s.store.ListNotes(ctx, userID, filter)
}

// Get returns one note owned by the user.
func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*domain.Note, error) {
	note, err := s.store.GetNote(ctx, userID, noteID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNoteNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}
	return note, nil
}

// Create persists a new note from a guard-validated payload. Title and
// document fall back to the blank-note defaults when omitted.
func (s *NoteService) Create(ctx context.Context, payload map[string]any) (*domain.Note, error) {
	userID, _ := stringField(payload, "userId")

	note := &domain.Note{
		ID:     id.MustNew(),
		UserID: userID,
	}
	if title, ok := stringField(payload, "title"); ok {
		note.Title = title
	} else {
		note.Title = domain.DefaultNoteTitle
	}
	if doc, ok := documentField(payload, "document"); ok {
		note.Document = doc
	} else {
		note.Document = domain.BlankDocument()
	}
	if folderID, ok := stringField(payload, "folderId"); ok {
		note.FolderID = folderID
	}
	if tags, ok := stringsField(payload, "tags"); ok {
		note.Tags = tags
	}
	note.InitTimestamps()

	if err := s.store.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update applies a partial update to a note owned by the user. Only
// fields present in the payload change.
func (s *NoteService) Update(ctx context.Context, userID, noteID string, payload map[string]any) (*domain.Note, error) {
	note, err := s.store.GetNote(ctx, userID, noteID)
	if err != nil {
		if domainerrors.Is(err, store.ErrNoteNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}

	if title, ok := stringField(payload, "title"); ok {
		note.Title = title
	}
	if doc, ok := documentField(payload, "document"); ok {
		note.Document = doc
	}
	if folderID, ok := stringField(payload, "folderId"); ok {
		note.FolderID = folderID
	}
	if tags, ok := stringsField(payload, "tags"); ok {
		note.Tags = tags
	}

	if err := s.store.UpdateNote(ctx, userID, note); err != nil {
		if domainerrors.Is(err, store.ErrNoteNotFound) {
			return nil, domainerrors.NotFound("Not Found")
		}
		return nil, err
	}
	return note, nil
}

// Delete removes a note owned by the user.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.store.DeleteNote(ctx, userID, noteID); err != nil {
		if domainerrors.Is(err, store.ErrNoteNotFound) {
			return domainerrors.NotFound("Not Found")
		}
		return err
	}

	if s.logger != nil {
		s.logger.Debug("Note deleted", "note_id", noteID, "user_id", userID)
	}
	return nil
}
