package domain

import "time"

// UserType distinguishes mall administrators from shop tenants.
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeTenant UserType = "tenant"
)

// User represents an account in the tenant directory.
type User struct {
	UserID      string   `json:"userID"` // Primary Key (UUID)
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	PhoneNumber string   `json:"phoneNumber"`
	UserType    UserType `json:"userType"`
	IsStaff     bool     `json:"isStaff"`
	// HasTemporaryPassword is true until the tenant replaces the password
	// issued at registration.
	HasTemporaryPassword bool `json:"hasTemporaryPassword"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// ProfilePatch is the explicit allow-list of tenant profile fields that a
// profile change request may modify. Pointers distinguish "not requested"
// from zero values.
type ProfilePatch struct {
	FullName    *string `json:"fullName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// IsEmpty reports whether the patch requests no changes at all.
func (p ProfilePatch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.PhoneNumber == nil
}

// ApplyTo copies the requested fields onto the user. Only fields named in
// the patch struct can ever be written; arbitrary key/value mappings are
// not representable.
func (p ProfilePatch) ApplyTo(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
}
