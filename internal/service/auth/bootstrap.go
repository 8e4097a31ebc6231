package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// EnsureAdmin creates the initial admin account when the user table is
// empty, so a fresh deployment is immediately usable. Runs at startup;
// a non-empty table makes it a no-op.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("auth.EnsureAdmin count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.cfg.AdminPassword == "" {
		s.log.WarnContext(ctx, "no users exist and ADMIN_PASSWORD is not set, skipping admin bootstrap")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth.EnsureAdmin hash password: %w", err)
	}

	admin, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         s.cfg.AdminName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("auth.EnsureAdmin create admin: %w", err)
	}

	s.log.InfoContext(ctx, "admin account created",
		slog.String("user_id", admin.ID.String()),
		slog.String("name", admin.Name))

	return nil
}
