package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account. The first user (the admin) is created at bootstrap
// when the store holds no users yet.
type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
