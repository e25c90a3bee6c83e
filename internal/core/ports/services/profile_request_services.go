package services

import (
	"context"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/dto"
)

// ProfileRequestSvcFacade defines the profile change review workflow.
type ProfileRequestSvcFacade interface {
	SubmitRequest(ctx context.Context, tenantID string, req dto.SubmitProfileRequestRequest) (*domain.ProfileChangeRequest, error)
	ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error)
	// ApproveRequest applies the allow-listed patch to the tenant profile
	// and marks the request approved, atomically.
	ApproveRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error)
	RejectRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error)
}
