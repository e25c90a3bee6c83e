package services

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
)

// UserSvcFacade defines the tenant directory operations.
type UserSvcFacade interface {
	// RegisterTenant creates a tenant account with a generated temporary
	// password, which is returned once for out-of-band delivery.
	RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest, creatorUserID string) (*domain.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListTenants(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)
	// ChangePassword verifies the current password, stores the new one and
	// clears the temporary-password flag.
	ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error
}
