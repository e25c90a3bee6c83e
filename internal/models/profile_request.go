package models

import "time"

// ProfileChangeRequest represents a row of the profile_change_requests
// table. The requested changes are stored as discrete nullable columns, one
// per allow-listed field, rather than a free-form JSON mapping.
type ProfileChangeRequest struct {
	RequestID      string     `db:"request_id"`
	TenantID       string     `db:"tenant_id"`
	NewFullName    *string    `db:"new_full_name"`
	NewEmail       *string    `db:"new_email"`
	NewPhoneNumber *string    `db:"new_phone_number"`
	Reason         string     `db:"reason"`
	Status         string     `db:"status"`
	ReviewedAt     *time.Time `db:"reviewed_at"`
	ReviewedBy     *string    `db:"reviewed_by"`
	AuditFields
}
