package mapping

import (
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/core/domain"
	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/models"
)

// ToModelProfileChangeRequest flattens the typed patch into the per-field
// nullable columns of the profile_change_requests table.
func ToModelProfileChangeRequest(d domain.ProfileChangeRequest) models.ProfileChangeRequest {
	return models.ProfileChangeRequest{
		RequestID:      d.RequestID,
		TenantID:       d.TenantID,
		NewFullName:    d.RequestedChanges.FullName,
		NewEmail:       d.RequestedChanges.Email,
		NewPhoneNumber: d.RequestedChanges.PhoneNumber,
		Reason:         d.Reason,
		Status:         string(d.Status),
		ReviewedAt:     d.ReviewedAt,
		ReviewedBy:     d.ReviewedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfileChangeRequest rebuilds the typed patch from the table row.
func ToDomainProfileChangeRequest(m models.ProfileChangeRequest) domain.ProfileChangeRequest {
	return domain.ProfileChangeRequest{
		RequestID: m.RequestID,
		TenantID:  m.TenantID,
		RequestedChanges: domain.ProfilePatch{
			FullName:    m.NewFullName,
			Email:       m.NewEmail,
			PhoneNumber: m.NewPhoneNumber,
		},
		Reason:      m.Reason,
		Status:      domain.RequestStatus(m.Status),
		ReviewedAt:  m.ReviewedAt,
		ReviewedBy:  m.ReviewedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProfileChangeRequestSlice converts a slice of request models.
func ToDomainProfileChangeRequestSlice(ms []models.ProfileChangeRequest) []domain.ProfileChangeRequest {
	ds := make([]domain.ProfileChangeRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfileChangeRequest(m)
	}
	return ds
}
