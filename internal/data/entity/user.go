package entity

import (
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCashier UserRole = "cashier"
)

// UserRoleFromString maps a stored role value to a known role. Unrecognized
// values fall back to cashier so a bad row never breaks a read.
func UserRoleFromString(s string) UserRole {
	switch s {
	case "admin":
		return RoleAdmin
	case "cashier":
		return RoleCashier
	default:
		return RoleCashier
	}
}

type User struct {
	Base
	Email        string   `db:"email"`
	Name         string   `db:"name"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// UserRow is the raw users row as stored: free-form role string, integer
// active flag, nullable timestamps.
type UserRow struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     int
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// ToUser coerces the raw row into a domain user. Missing timestamps default
// to the current time at read.
func (r *UserRow) ToUser() *User {
	now := time.Now()

	createdAt := now
	if r.CreatedAt != nil {
		createdAt = *r.CreatedAt
	}

	updatedAt := now
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &User{
		Base: Base{
			ID:        r.ID,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		},
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         UserRoleFromString(r.Role),
		IsActive:     r.IsActive != 0,
	}
}
