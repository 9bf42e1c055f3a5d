package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quillapp/quill-server/internal/request"
)

// folderFields is the payload allow-list for folder writes.
var folderFields = []string{"name", "parent"}

func (s *Server) registerFolderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFolders",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders",
		Summary:     "List folders",
		Description: "Returns all folders for the current user, sorted by name",
		Tags:        []string{"Folders"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListFolders)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createFolder",
		Method:        http.MethodPost,
		Path:          "/api/v1/folders",
		Summary:       "Create folder",
		Description:   "Creates a new folder",
		Tags:          []string{"Folders"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFolder",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Get folder",
		Description: "Returns a folder by ID",
		Tags:        []string{"Folders"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateFolder",
		Method:      http.MethodPut,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Update folder",
		Description: "Updates a folder's name or parent",
		Tags:        []string{"Folders"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateFolder)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteFolder",
		Method:        http.MethodDelete,
		Path:          "/api/v1/folders/{id}",
		Summary:       "Delete folder",
		Description:   "Deletes a folder and clears its reference from any notes",
		Tags:          []string{"Folders"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteFolder)
}

// === DTOs ===

// ListFoldersInput contains parameters for listing folders.
type ListFoldersInput struct {
	Authorization string `header:"Authorization"`
}

// ListFoldersOutput wraps the folder list for Huma.
type ListFoldersOutput struct {
	Body []*folderResponse
}

// CreateFolderInput wraps the create folder request for Huma. The body
// stays a raw map so the guard pipeline sees exactly what the client
// sent, key presence included.
type CreateFolderInput struct {
	Authorization string `header:"Authorization"`
	Body          map[string]any
}

// CreateFolderOutput wraps the created folder for Huma.
type CreateFolderOutput struct {
	Location string `header:"Location"`
	Body     *folderResponse
}

// GetFolderInput contains parameters for getting a folder.
type GetFolderInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Folder ID"`
}

// FolderOutput wraps a single folder for Huma.
type FolderOutput struct {
	Body *folderResponse
}

// UpdateFolderInput wraps the update folder request for Huma.
type UpdateFolderInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Folder ID"`
	Body          map[string]any
}

// DeleteFolderInput contains parameters for deleting a folder.
type DeleteFolderInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Folder ID"`
}

// DeleteFolderOutput is an empty 204 response.
type DeleteFolderOutput struct{}

// === Handlers ===

func (s *Server) handleListFolders(ctx context.Context, input *ListFoldersInput) (*ListFoldersOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	folders, err := s.services.Folder.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ListFoldersOutput{Body: newFolderListResponse(folders)}, nil
}

func (s *Server) handleCreateFolder(ctx context.Context, input *CreateFolderInput) (*CreateFolderOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodPost, Body: input.Body}
	if err := request.Run(ctx, rc,
		request.RequireFields(http.StatusBadRequest, "name"),
		request.FolderReference(s.store),
	); err != nil {
		return nil, err
	}

	folder, err := s.services.Folder.Create(ctx, request.BuildPayload(folderFields, input.Body, userID))
	if err != nil {
		return nil, err
	}

	return &CreateFolderOutput{
		Location: "/api/v1/folders/" + folder.ID,
		Body:     newFolderResponse(folder),
	}, nil
}

func (s *Server) handleGetFolder(ctx context.Context, input *GetFolderInput) (*FolderOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodGet, ParamID: input.ID}
	if err := request.Run(ctx, rc, request.ValidateID); err != nil {
		return nil, err
	}

	folder, err := s.services.Folder.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}
	return &FolderOutput{Body: newFolderResponse(folder)}, nil
}

func (s *Server) handleUpdateFolder(ctx context.Context, input *UpdateFolderInput) (*FolderOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodPut, ParamID: input.ID, Body: input.Body}
	if err := request.Run(ctx, rc,
		request.RequireFields(http.StatusBadRequest, "id", "name"),
		request.ValidateID,
		request.FolderReference(s.store),
		request.MatchingIDs,
	); err != nil {
		return nil, err
	}

	folder, err := s.services.Folder.Update(ctx, userID, input.ID, request.BuildPayload(folderFields, input.Body, userID))
	if err != nil {
		return nil, err
	}
	return &FolderOutput{Body: newFolderResponse(folder)}, nil
}

func (s *Server) handleDeleteFolder(ctx context.Context, input *DeleteFolderInput) (*DeleteFolderOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	rc := &request.Context{UserID: userID, Method: http.MethodDelete, ParamID: input.ID}
	if err := request.Run(ctx, rc, request.ValidateID); err != nil {
		return nil, err
	}

	if err := s.services.Folder.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}
	return &DeleteFolderOutput{}, nil
}
