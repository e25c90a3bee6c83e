package dto

import (
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
)

// SubmitProfileRequestRequest carries the tenant's requested profile
// changes. Only these three fields can ever be requested.
type SubmitProfileRequestRequest struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Reason      string  `json:"reason"`
}

// Patch converts the request into the domain allow-list patch.
func (r SubmitProfileRequestRequest) Patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

// ProfileRequestResponse is the review-queue entry returned to clients.
type ProfileRequestResponse struct {
	RequestID        string               `json:"requestID"`
	TenantID         string               `json:"tenantID"`
	RequestedChanges domain.ProfilePatch  `json:"requestedChanges"`
	Reason           string               `json:"reason,omitempty"`
	Status           domain.RequestStatus `json:"status"`
	ReviewedAt       *time.Time           `json:"reviewedAt,omitempty"`
	ReviewedBy       *string              `json:"reviewedBy,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// ToProfileRequestResponse converts a domain request to its response DTO.
func ToProfileRequestResponse(req *domain.ProfileChangeRequest) ProfileRequestResponse {
	return ProfileRequestResponse{
		RequestID:        req.RequestID,
		TenantID:         req.TenantID,
		RequestedChanges: req.RequestedChanges,
		Reason:           req.Reason,
		Status:           req.Status,
		ReviewedAt:       req.ReviewedAt,
		ReviewedBy:       req.ReviewedBy,
		CreatedAt:        req.CreatedAt,
	}
}

// ToProfileRequestResponses converts a slice of requests.
func ToProfileRequestResponses(reqs []domain.ProfileChangeRequest) []ProfileRequestResponse {
	res := make([]ProfileRequestResponse, len(reqs))
	for i := range reqs {
		res[i] = ToProfileRequestResponse(&reqs[i])
	}
	return res
}

// ListProfileRequestsParams defines query parameters for the review queue.
type ListProfileRequestsParams struct {
	Status *string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Limit  int     `form:"limit,default=20"`
	Offset int     `form:"offset,default=0"`
}
