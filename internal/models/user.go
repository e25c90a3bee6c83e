package models

import (
	"time"
)

// UserType mirrors the user_type column check constraint.
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeTenant UserType = "tenant"
)

// User represents a row of the users table.
type User struct {
	UserID               string   `db:"user_id"`
	Email                string   `db:"email"`
	PasswordHash         string   `db:"password_hash"`
	FullName             string   `db:"full_name"`
	PhoneNumber          string   `db:"phone_number"`
	UserType             UserType `db:"user_type"`
	IsStaff              bool     `db:"is_staff"`
	HasTemporaryPassword bool     `db:"has_temporary_password"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
