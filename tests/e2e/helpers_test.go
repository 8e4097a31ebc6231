//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres"
	postrepo "github.com/heartmarshall/alpha-backend/internal/adapter/postgres/post"
	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/alpha-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/alpha-backend/internal/auth"
	"github.com/heartmarshall/alpha-backend/internal/config"
	"github.com/heartmarshall/alpha-backend/internal/domain"
	authsvc "github.com/heartmarshall/alpha-backend/internal/service/auth"
	postsvc "github.com/heartmarshall/alpha-backend/internal/service/post"
	"github.com/heartmarshall/alpha-backend/internal/transport/middleware"
	"github.com/heartmarshall/alpha-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool

	adminToken string
}

// newTestServer assembles the whole application over a containerized
// database and returns it together with a valid admin token.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager := postgres.NewTxManager(pool)
	posts := postrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := authpkg.NewJWTManager(
		"e2e-secret-key-that-is-long-enough-000",
		"alpha-test",
		time.Hour,
	)

	postService := postsvc.NewService(logger, posts, txManager)
	authService := authsvc.NewService(logger, users, jwtManager, config.AuthConfig{})

	admin := seedAdmin(t, pool, "e2e-password")
	token, err := jwtManager.GenerateAccessToken(admin.ID)
	require.NoError(t, err)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Log:       logger,
		Posts:     rest.NewPostHandler(postService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
		Validator: jwtManager,
		Limiter:   limiter,
		CORS:      config.CORSConfig{AllowedOrigins: "*"},
		LoginRate: 1000, // keep the limiter out of the way unless a test opts in
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:        srv.URL,
		Client:     srv.Client(),
		Pool:       pool,
		adminToken: token,
	}
}

// seedAdmin creates a user with a real bcrypt hash for login tests.
func seedAdmin(t *testing.T, pool *pgxpool.Pool, password string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return testhelper.SeedUser(t, pool, string(hash))
}

// do sends an authenticated JSON request and returns the raw response.
func (s *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	return s.doWithToken(t, method, path, s.adminToken, body)
}

// doAnonymous sends a request without a token.
func (s *testServer) doAnonymous(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	return s.doWithToken(t, method, path, "", body)
}

func (s *testServer) doWithToken(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, s.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

// decode reads the response body into a map.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// decodeList reads the response body into a slice of maps.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
