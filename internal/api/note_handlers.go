package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quillapp/quill-server/internal/request"
	"github.com/quillapp/quill-server/internal/store"
)

// noteFields is the payload allow-list for note writes.
var noteFields = []string{"title", "document", "folderId", "tags"}

func (s *Server) registerNoteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listNotes",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes",
		Summary:     "List notes",
		Description: "Returns the current user's notes, most recently updated first. Supports filtering by folder, tag, and title search.",
		Tags:        []string{"Notes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListNotes)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createNote",
		Method:        http.MethodPost,
		Path:          "/api/v1/notes",
		Summary:       "Create note",
		Description:   "Creates a new note. Title and document fall back to blank-note defaults.",
		Tags:          []string{"Notes"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "getNote",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Get note",
		Description: "Returns a note by ID",
		Tags:        []string{"Notes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetNote)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateNote",
		Method:      http.MethodPut,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Update note",
		Description: "Updates a note's title, document, folder, or tags",
		Tags:        []string{"Notes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateNote)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteNote",
		Method:        http.MethodDelete,
		Path:          "/api/v1/notes/{id}",
		Summary:       "Delete note",
		Description:   "Deletes a note",
		Tags:          []string{"Notes"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteNote)
}

// === DTOs ===

// ListNotesInput contains filter parameters for listing notes.
type ListNotesInput struct {
	Authorization string `header:"Authorization"`
	FolderID      string `query:"folderId" doc:"Only notes in this folder"`
	TagID         string `query:"tagId" doc:"Only notes carrying this tag"`
	SearchTerm    string `query:"searchTerm" doc:"Case-insensitive title substring"`
}

// ListNotesOutput wraps the note list for Huma.
type ListNotesOutput struct {
	Body []*noteResponse
}

// CreateNoteInput wraps the create note request for Huma.
type CreateNoteInput struct {
	Authorization string `header:"Authorization"`
	Body          map[string]any
}

// CreateNoteOutput wraps the created note for Huma.
type CreateNoteOutput struct {
	Location string `header:"Location"`
	Body     *noteResponse
}

// GetNoteInput contains parameters for getting a note.
type GetNoteInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Note ID"`
}

// NoteOutput wraps a single note for Huma.
type NoteOutput struct {
	Body *noteResponse
}

// UpdateNoteInput wraps the update note request for Huma.
type UpdateNoteInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Note ID"`
	Body          map[string]any
}

// DeleteNoteInput contains parameters for deleting a note.
type DeleteNoteInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Note ID"`
}

// DeleteNoteOutput is an empty 204 response.
type DeleteNoteOutput struct{}

// === Handlers ===

func (s *Server) handleListNotes(ctx context.Context, input *ListNotesInput) (*ListNotesOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	notes, err := s.services.Note.List(ctx, userID, store.NoteFilter{
		FolderID:   input.FolderID,
		TagID:      input.TagID,
		SearchTerm: input.SearchTerm,
	})
	if err != nil {
		return nil, err
	}
	return &ListNotesOutput{Body: newNoteListResponse(notes)}, nil
}

func (s *Server) handleCreateNote(ctx context.Context, input *CreateNoteInput) (*CreateNoteOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodPost, Body: input.Body}
	if err := request.Run(ctx, rc,
		request.ValidateID,
		request.FolderReference(s.store),
		request.TagReferences(s.store),
	); err != nil {
		return nil, err
	}

	note, err := s.services.Note.Create(ctx, request.BuildPayload(noteFields, input.Body, userID))
	if err != nil {
		return nil, err
	}

	return &CreateNoteOutput{
		Location: "/api/v1/notes/" + note.ID,
		Body:     newNoteResponse(note),
	}, nil
}

func (s *Server) handleGetNote(ctx context.Context, input *GetNoteInput) (*NoteOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodGet, ParamID: input.ID}
	if err := request.Run(ctx, rc, request.ValidateID); err != nil {
		return nil, err
	}

	note, err := s.services.Note.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}
	return &NoteOutput{Body: newNoteResponse(note)}, nil
}

func (s *Server) handleUpdateNote(ctx context.Context, input *UpdateNoteInput) (*NoteOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodPut, ParamID: input.ID, Body: input.Body}
	if err := request.Run(ctx, rc,
		request.RequireFields(http.StatusBadRequest, "id"),
		request.ValidateID,
		request.TagReferences(s.store),
		request.FolderReference(s.store),
		request.MatchingIDs,
	); err != nil {
		return nil, err
	}

	note, err := s.services.Note.Update(ctx, userID, input.ID, request.BuildPayload(noteFields, input.Body, userID))
	if err != nil {
		return nil, err
	}
	return &NoteOutput{Body: newNoteResponse(note)}, nil
}

func (s *Server) handleDeleteNote(ctx context.Context, input *DeleteNoteInput) (*DeleteNoteOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodDelete, ParamID: input.ID}
	if err := request.Run(ctx, rc, request.ValidateID); err != nil {
		return nil, err
	}

	if err := s.services.Note.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}
	return &DeleteNoteOutput{}, nil
}
