package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bookmark-api/internal/api"
	"github.com/phrazzld/bookmark-api/internal/api/middleware"
	"github.com/phrazzld/bookmark-api/internal/config"
	"github.com/phrazzld/bookmark-api/internal/service"
	"github.com/phrazzld/bookmark-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testServer wires real services, a real Argon2 hasher and a real JWT signer
// over an in-memory store behind the production route table.
type testServer struct {
	*httptest.Server
	jwt auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mem := newMemStore()
	log := discardLogger()

	hasher, err := auth.NewArgon2Hasher(config.Argon2Config{Time: 1, MemoryKiB: 64, Threads: 1})
	require.NoError(t, err)
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	credentials, err := service.NewCredentialService(memUsers{mem}, hasher, jwtService, log)
	require.NoError(t, err)
	users, err := service.NewUserService(memUsers{mem}, log)
	require.NoError(t, err)
	bookmarks, err := service.NewBookmarkService(memBookmarks{mem}, log)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	api.Routes{
		Auth:           api.NewAuthHandler(credentials),
		Users:          api.NewUserHandler(users),
		Bookmarks:      api.NewBookmarkHandler(bookmarks),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}.Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, jwt: jwtService}
}

// do sends a JSON request and returns the status and raw body.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			encoded, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(encoded)
		}
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (s *testServer) signup(t *testing.T, email, password string) string {
	t.Helper()
	status, raw := s.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp.AccessToken
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
