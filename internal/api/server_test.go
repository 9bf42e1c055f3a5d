package api

import (
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/quillapp/quill-server/internal/auth"
	"github.com/quillapp/quill-server/internal/ratelimit"
	"github.com/quillapp/quill-server/internal/service"
	"github.com/quillapp/quill-server/internal/store"
	"github.com/quillapp/quill-server/internal/validation"
)

// testServer wires a full server against a throwaway database so tests
// exercise the same middleware, guards, and error mapping as production.
type testServer struct {
	*Server
	api humatest.TestAPI
}

func newTestServer(t *testing.T) *testServer {
	return newTestServerWithLimiter(t, nil)
}

func newTestServerWithLimiter(t *testing.T, limiter *ratelimit.KeyedRateLimiter) *testServer {
	t.Helper()

	dir := t.TempDir()
	st, err := store.New(filepath.Join(dir, "quill.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	key, err := auth.LoadOrGenerateKey(dir)
	require.NoError(t, err)
	tokenService, err := auth.NewTokenService(hex.EncodeToString(key), 15*time.Minute, 30*24*time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	validator := validation.New()

	sessionService := service.NewSessionService(st, tokenService, logger)
	services := &Services{
		Instance: service.NewInstanceService(st, "Quill Test", logger),
		Auth:     service.NewAuthService(st, tokenService, sessionService, validator, logger),
		User:     service.NewUserService(st, logger),
		Folder:   service.NewFolderService(st, logger),
		Note:     service.NewNoteService(st, logger),
		Tag:      service.NewTagService(st, logger),
	}

	srv := NewServer(st, services, limiter, logger)
	return &testServer{Server: srv, api: humatest.Wrap(t, srv.api)}
}

// registerAndLogin creates an account and returns a bearer token with
// the user's ID.
func (ts *testServer) registerAndLogin(t *testing.T, email string) (token, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/users", map[string]any{
		"email":     email,
		"password":  "password123",
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.Code, "registration failed: %s", resp.Body.String())

	login := ts.api.Post("/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, login.Code, "login failed: %s", login.Body.String())

	body := decode[authResponse](t, login)
	return body.AccessToken, body.User.ID
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

// errorBody is the error shape every failing response carries.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func bearer(token string) string {
	return "Authorization: Bearer " + token
}
