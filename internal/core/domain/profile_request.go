package domain

import "time"

// RequestStatus indicates the review state of a profile change request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// ProfileChangeRequest is a tenant's request to alter their directory
// profile, held for admin review. RequestedChanges is a typed patch, so
// only allow-listed fields can ever be applied on approval.
type ProfileChangeRequest struct {
	RequestID        string        `json:"requestID"` // Primary Key (UUID)
	TenantID         string        `json:"tenantID"`  // FK -> users.user_id (Not Null)
	RequestedChanges ProfilePatch  `json:"requestedChanges"`
	Reason           string        `json:"reason"` // Optional free text
	Status           RequestStatus `json:"status"`
	ReviewedAt       *time.Time    `json:"reviewedAt,omitempty"`
	ReviewedBy       *string       `json:"reviewedBy,omitempty"` // Admin UserID
	AuditFields
}
