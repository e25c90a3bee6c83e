package repositories

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// ProfileChangeRequestRepository defines persistence for profile change
// requests.
type ProfileChangeRequestRepository interface {
	SaveRequest(ctx context.Context, req domain.ProfileChangeRequest) error
	FindRequestByID(ctx context.Context, requestID string) (*domain.ProfileChangeRequest, error)
	// ListRequests returns requests newest first, optionally filtered by
	// status.
	ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error)
	// ApplyReview updates the request's review fields and, when
	// updatedTenant is non-nil (approval), writes the tenant's new profile
	// in the same transaction.
	ApplyReview(ctx context.Context, req domain.ProfileChangeRequest, updatedTenant *domain.User) error
}
