package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/quillapp/quill-server/internal/request"
	"github.com/quillapp/quill-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "registerUser",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Register user",
		Description:   "Creates a new account and seeds it with a blank note",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleRegisterUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentUser",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/me",
		Summary:     "Get current user",
		Description: "Returns the authenticated user's profile",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCurrentUser)
}

// === DTOs ===

// RegisterUserInput wraps the registration request for Huma. A raw map
// lets the field-presence and whitespace rules run before any decoding
// coerces values.
type RegisterUserInput struct {
	Body map[string]any
}

// RegisterUserOutput wraps the created user for Huma.
type RegisterUserOutput struct {
	Location string `header:"Location"`
	Body     *userResponse
}

// GetCurrentUserInput contains parameters for the profile lookup.
type GetCurrentUserInput struct {
	Authorization string `header:"Authorization"`
}

// UserOutput wraps a single user for Huma.
type UserOutput struct {
	Body *userResponse
}

// === Handlers ===

func (s *Server) handleRegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	rc := &request.Context{Method: http.MethodPost, Body: input.Body}
	if err := request.Run(ctx, rc,
		request.RequireFields(http.StatusUnprocessableEntity, "email", "password", "firstName", "lastName"),
		request.ValidateRegistration,
	); err != nil {
		return nil, err
	}

	email, _ := input.Body["email"].(string)
	password, _ := input.Body["password"].(string)
	firstName, _ := input.Body["firstName"].(string)
	lastName, _ := input.Body["lastName"].(string)

	user, err := s.services.User.Register(ctx, service.RegisterParams{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{
		Location: "/api/v1/users/" + user.ID,
		Body:     newUserResponse(user),
	}, nil
}

func (s *Server) handleGetCurrentUser(ctx context.Context, input *GetCurrentUserInput) (*UserOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	user, err := s.services.User.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserOutput{Body: newUserResponse(user)}, nil
}
