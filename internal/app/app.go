// Package app wires configuration, storage, services and the HTTP server
// into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres"
	postrepo "github.com/heartmarshall/alpha-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/alpha-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/alpha-backend/internal/auth"
	"github.com/heartmarshall/alpha-backend/internal/config"
	authsvc "github.com/heartmarshall/alpha-backend/internal/service/auth"
	postsvc "github.com/heartmarshall/alpha-backend/internal/service/post"
	"github.com/heartmarshall/alpha-backend/internal/transport/middleware"
	"github.com/heartmarshall/alpha-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, assembles services and serves HTTP until ctx is cancelled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	posts := postrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	postService := postsvc.NewService(logger, posts, txManager)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)

	if err := authService.EnsureAdmin(ctx); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Log:       logger,
		Posts:     rest.NewPostHandler(postService, logger),
		Auth:      rest.NewAuthHandler(authService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Validator: jwtManager,
		Limiter:   limiter,
		CORS:      cfg.CORS,
		LoginRate: cfg.Server.LoginRateLimit,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
