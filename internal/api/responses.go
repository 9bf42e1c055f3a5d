package api

import (
	"time"

	"github.com/quillapp/quill-server/internal/domain"
	"github.com/quillapp/quill-server/internal/service"
)

// Response types strip server-internal fields before anything leaves
// the process: owner ids are implied by the bearer token, and password
// hashes never leave at all.

type userResponse struct {
	ID        string `json:"id" doc:"User identifier"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func newUserResponse(user *domain.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

type folderResponse struct {
	ID        string    `json:"id" doc:"Folder identifier"`
	Name      string    `json:"name"`
	Parent    string    `json:"parent,omitempty" doc:"Parent folder identifier"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newFolderResponse(folder *domain.Folder) *folderResponse {
	return &folderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		Parent:    folder.Parent,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

func newFolderListResponse(folders []*domain.Folder) []*folderResponse {
	out := make([]*folderResponse, 0, len(folders))
	for _, folder := range folders {
		out = append(out, newFolderResponse(folder))
	}
	return out
}

type tagResponse struct {
	ID        string    `json:"id" doc:"Tag identifier"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTagResponse(tag *domain.Tag) *tagResponse {
	return &tagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

func newTagListResponse(tags []*domain.Tag) []*tagResponse {
	out := make([]*tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, newTagResponse(tag))
	}
	return out
}

type noteResponse struct {
	ID        string         `json:"id" doc:"Note identifier"`
	Title     string         `json:"title"`
	Document  map[string]any `json:"document" doc:"Rich-text document tree, stored verbatim"`
	FolderID  string         `json:"folderId,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func newNoteResponse(note *domain.Note) *noteResponse {
	return &noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Document:  note.Document,
		FolderID:  note.FolderID,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func newNoteListResponse(notes []*domain.Note) []*noteResponse {
	out := make([]*noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, newNoteResponse(note))
	}
	return out
}

type authResponse struct {
	User         *userResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	TokenType    string        `json:"tokenType"`
	ExpiresIn    int           `json:"expiresIn" doc:"Access token lifetime in seconds"`
	SessionID    string        `json:"sessionId"`
}

func newAuthResponse(resp *service.AuthResponse) *authResponse {
	return &authResponse{
		User:         newUserResponse(resp.User),
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		SessionID:    resp.SessionID,
	}
}
