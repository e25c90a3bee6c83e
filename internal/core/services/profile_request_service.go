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
)

type profileRequestService struct {
	BaseService
	requestRepo portsrepo.ProfileChangeRequestRepository
	userRepo    portsrepo.UserRepository
}

// NewProfileRequestService creates the profile change review service.
func NewProfileRequestService(requestRepo portsrepo.ProfileChangeRequestRepository, userRepo portsrepo.UserRepository) portssvc.ProfileRequestSvcFacade {
	return &profileRequestService{requestRepo: requestRepo, userRepo: userRepo}
}

var _ portssvc.ProfileRequestSvcFacade = (*profileRequestService)(nil)

// SubmitRequest files a tenant's profile change request for admin review.
// The request must name at least one field.
func (s *profileRequestService) SubmitRequest(ctx context.Context, tenantID string, req dto.SubmitProfileRequestRequest) (*domain.ProfileChangeRequest, error) {
	patch := req.Patch()
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: request must change at least one field", apperrors.ErrValidation)
	}

	// The tenant must still exist; the token could outlive the account.
	if _, err := s.userRepo.FindUserByID(ctx, tenantID); err != nil {
		return nil, err
	}

	now := time.Now()
	request := domain.ProfileChangeRequest{
		RequestID:        uuid.NewString(),
		TenantID:         tenantID,
		RequestedChanges: patch,
		Reason:           req.Reason,
		Status:           domain.RequestPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenantID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenantID,
		},
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "failed to save profile change request", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "profile change request submitted", slog.String("request_id", request.RequestID))
	return &request, nil
}

// ListRequests lists requests for the admin review queue.
func (s *profileRequestService) ListRequests(ctx context.Context, status *domain.RequestStatus, limit int, offset int) ([]domain.ProfileChangeRequest, error) {
	return s.requestRepo.ListRequests(ctx, status, limit, offset)
}

// ApproveRequest applies the allow-listed patch to the tenant profile and
// marks the request approved, atomically. Only pending requests can be
// reviewed.
func (s *profileRequestService) ApproveRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestPending {
		return nil, fmt.Errorf("%w: request %s has already been %s", apperrors.ErrConflict, requestID, request.Status)
	}

	tenant, err := s.userRepo.FindUserByID(ctx, request.TenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.RequestedChanges.ApplyTo(tenant)
	tenant.LastUpdatedAt = now
	tenant.LastUpdatedBy = reviewerUserID

	request.Status = domain.RequestApproved
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewerUserID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = reviewerUserID

	if err := s.requestRepo.ApplyReview(ctx, *request, tenant); err != nil {
		s.LogError(ctx, err, "failed to approve profile change request", slog.String("request_id", requestID))
		return nil, err
	}

	s.LogInfo(ctx, "profile change request approved",
		slog.String("request_id", requestID),
		slog.String("tenant_id", request.TenantID))
	return request, nil
}

// RejectRequest marks a pending request rejected without touching the
// tenant profile.
func (s *profileRequestService) RejectRequest(ctx context.Context, requestID string, reviewerUserID string) (*domain.ProfileChangeRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RequestPending {
		return nil, fmt.Errorf("%w: request %s has already been %s", apperrors.ErrConflict, requestID, request.Status)
	}

	now := time.Now()
	request.Status = domain.RequestRejected
	request.ReviewedAt = &now
	request.ReviewedBy = &reviewerUserID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = reviewerUserID

	if err := s.requestRepo.ApplyReview(ctx, *request, nil); err != nil {
		s.LogError(ctx, err, "failed to reject profile change request", slog.String("request_id", requestID))
		return nil, err
	}

	s.LogInfo(ctx, "profile change request rejected", slog.String("request_id", requestID))
	return request, nil
}
