package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/apperrors"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	portsrepo "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/repositories"
	portssvc "github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/ports/services"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates the tenant directory service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterTenant creates a tenant account with a generated temporary
// password. The plaintext is returned exactly once so the admin can hand it
// over; only the bcrypt hash is stored.
func (s *userService) RegisterTenant(ctx context.Context, req dto.RegisterTenantRequest, creatorUserID string) (*domain.User, string, error) {
	tempPassword, err := utils.GenerateTemporaryPassword()
	if err != nil {
		s.LogError(ctx, err, "failed to generate temporary password")
		return nil, "", fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		s.LogError(ctx, err, "failed to hash temporary password")
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:               uuid.NewString(),
		Email:                req.Email,
		FullName:             req.FullName,
		PhoneNumber:          req.PhoneNumber,
		UserType:             domain.UserTypeTenant,
		IsStaff:              false,
		HasTemporaryPassword: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
		s.LogError(ctx, err, "failed to save tenant", slog.String("email", req.Email))
		return nil, "", err
	}

	s.LogInfo(ctx, "tenant registered", slog.String("user_id", user.UserID))
	return &user, tempPassword, nil
}

// GetUserByID fetches a single user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListTenants lists tenant accounts.
func (s *userService) ListTenants(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return s.userRepo.ListUsersByType(ctx, domain.UserTypeTenant, limit, offset)
}

// UpdateUser applies an admin edit to a user's profile fields.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user. An admin cannot delete themselves.
func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	if userID == deleterUserID {
		return fmt.Errorf("%w: cannot delete own account", apperrors.ErrValidation)
	}
	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterUserID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}

// Authenticate verifies credentials. A wrong email and a wrong password
// both come back as ErrUnauthorized so the two cases are indistinguishable
// to the caller.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, hash, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, hash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// ChangePassword verifies the current password, stores the new one and
// clears the temporary-password flag.
func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	_, hash, err := s.userRepo.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, hash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	}

	newHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "failed to hash new password", slog.String("user_id", userID))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, newHash, false, userID, time.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "password changed", slog.String("user_id", userID))
	return nil
}
