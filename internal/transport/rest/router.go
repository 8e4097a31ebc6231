package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/config"
	"github.com/heartmarshall/alpha-backend/internal/transport/middleware"
)

// tokenValidator resolves a Bearer token into a user ID.
type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Log       *slog.Logger
	Posts     *PostHandler
	Auth      *AuthHandler
	Health    *HealthHandler
	Validator tokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	LoginRate int
}

// NewRouter assembles the HTTP routing table:
//
//	GET  /                       welcome
//	GET  /live /ready /health    probes
//	POST /api/v1/auth/login      login (rate limited)
//	*    /api/v1/posts...        post resource (Bearer token required)
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", welcome)

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	login := middleware.Chain(deps.Limiter.Limit(deps.LoginRate))
	mux.Handle("POST /api/v1/auth/login", login(http.HandlerFunc(deps.Auth.Login)))

	secured := middleware.Chain(
		middleware.Auth(deps.Validator),
		middleware.RequireUser,
	)

	posts := deps.Posts
	mux.Handle("GET /api/v1/posts", secured(http.HandlerFunc(posts.List)))
	mux.Handle("POST /api/v1/posts", secured(http.HandlerFunc(posts.Create)))
	mux.Handle("GET /api/v1/posts/{id}", secured(http.HandlerFunc(posts.Get)))
	mux.Handle("PUT /api/v1/posts/{id}", secured(http.HandlerFunc(posts.Update)))
	mux.Handle("DELETE /api/v1/posts/{id}", secured(http.HandlerFunc(posts.Delete)))
	mux.Handle("PUT /api/v1/posts/{id}/publish", secured(http.HandlerFunc(posts.Publish)))
	mux.Handle("PUT /api/v1/posts/{id}/officialize", secured(http.HandlerFunc(posts.Officialize)))
	mux.Handle("PUT /api/v1/posts/{id}/unofficialize", secured(http.HandlerFunc(posts.Unofficialize)))

	root := middleware.Chain(
		middleware.Recovery(deps.Log),
		middleware.RequestID,
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Log),
	)

	return root(mux)
}

func welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Project Alpha API",
	})
}
