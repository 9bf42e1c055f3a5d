package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Post("/api/v1/users", map[string]any{
		"email":     "ada@example.com",
		"password":  "password123",
		"firstName": "  Ada  ",
		"lastName":  "Lovelace",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	user := decode[userResponse](t, resp)
	assert.Equal(t, "Ada", user.FirstName, "names are trimmed")
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "/api/v1/users/"+user.ID, resp.Header().Get("Location"))
}

func TestRegisterUser_MissingFieldIs422(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.api.Post("/api/v1/users", map[string]any{
		"email":    "ada@example.com",
		"password": "password123",
		"lastName": "Lovelace",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "Missing `firstName` in request body.", decode[errorBody](t, resp).Message)
}

func TestRegisterUser_Validation(t *testing.T) {
	ts := newTestServer(t)

	base := func() map[string]any {
		return map[string]any{
			"email":     "ada@example.com",
			"password":  "password123",
			"firstName": "Ada",
			"lastName":  "Lovelace",
		}
	}

	tests := []struct {
		name    string
		mutate  func(body map[string]any)
		message string
	}{
		{
			name:    "password too short",
			mutate:  func(b map[string]any) { b["password"] = "seven77" },
			message: "Password must be between 8 and 72 characters long.",
		},
		{
			name:    "malformed email",
			mutate:  func(b map[string]any) { b["email"] = "not-an-email" },
			message: "That is not a valid email.",
		},
		{
			name:    "leading space in email",
			mutate:  func(b map[string]any) { b["email"] = " ada@example.com" },
			message: "email and password cannot begin or end with a space.",
		},
		{
			name:    "non-string credentials",
			mutate:  func(b map[string]any) { b["password"] = 12345678 },
			message: "`email` and `password` must be of type string.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.mutate(body)
			resp := ts.api.Post("/api/v1/users", body)
			require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
			assert.Equal(t, tt.message, decode[errorBody](t, resp).Message)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "ada@example.com")

	resp := ts.api.Post("/api/v1/users", map[string]any{
		"email":     "ada@example.com",
		"password":  "password123",
		"firstName": "Ada",
		"lastName":  "Again",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code, "duplicates respond 400, not 409")
	assert.Equal(t, "The email `ada@example.com` already exists.", decode[errorBody](t, resp).Message)
}

func TestRegisterUser_SeedsBlankNote(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerAndLogin(t, "ada@example.com")

	resp := ts.api.Get("/api/v1/notes", bearer(token))
	require.Equal(t, http.StatusOK, resp.Code)

	notes := decode[[]*noteResponse](t, resp)
	require.Len(t, notes, 1)
	assert.Equal(t, "Untitled note", notes[0].Title)
}

func TestGetCurrentUser(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.registerAndLogin(t, "ada@example.com")

	resp := ts.api.Get("/api/v1/users/me", bearer(token))
	require.Equal(t, http.StatusOK, resp.Code)

	user := decode[userResponse](t, resp)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	assert.Equal(t, http.StatusUnauthorized, ts.api.Get("/api/v1/users/me").Code)
}
