package repositories

import (
	"context"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// UserRepository defines persistence operations for the tenant directory.
type UserRepository interface {
	// SaveUser inserts a new user with the given bcrypt password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail returns the user and their password hash. Soft-deleted
	// users are excluded.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, string, error)
	ListUsersByType(ctx context.Context, userType domain.UserType, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdatePassword replaces the stored hash and records whether the new
	// password is temporary.
	UpdatePassword(ctx context.Context, userID string, passwordHash string, temporary bool, updatedBy string, now time.Time) error
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, now time.Time) error
}
