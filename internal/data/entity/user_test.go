package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  UserRole
	}{
		{name: "admin", input: "admin", want: RoleAdmin},
		{name: "cashier", input: "cashier", want: RoleCashier},
		{name: "empty falls back to cashier", input: "", want: RoleCashier},
		{name: "unknown falls back to cashier", input: "manager", want: RoleCashier},
		{name: "case sensitive, falls back", input: "Admin", want: RoleCashier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserRoleFromString(tt.input))
		})
	}
}

func TestUserRow_ToUser(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

		row := &UserRow{
			ID:           "user-1",
			Email:        "ann@example.com",
			Name:         "Ann",
			PasswordHash: "$2a$10$hash",
			Role:         "admin",
			IsActive:     1,
			CreatedAt:    &createdAt,
			UpdatedAt:    &updatedAt,
		}

		user := row.ToUser()

		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "Ann", user.Name)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, RoleAdmin, user.Role)
		assert.True(t, user.IsActive)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.Equal(t, updatedAt, user.UpdatedAt)
	})

	t.Run("unknown role degrades to cashier", func(t *testing.T) {
		row := &UserRow{ID: "user-2", Role: "superuser", IsActive: 1}

		user := row.ToUser()

		assert.Equal(t, RoleCashier, user.Role)
	})

	t.Run("integer active flag", func(t *testing.T) {
		assert.False(t, (&UserRow{IsActive: 0}).ToUser().IsActive)
		assert.True(t, (&UserRow{IsActive: 1}).ToUser().IsActive)
		// any nonzero value counts as active
		assert.True(t, (&UserRow{IsActive: 5}).ToUser().IsActive)
	})

	t.Run("missing timestamps default to read time", func(t *testing.T) {
		before := time.Now()
		user := (&UserRow{ID: "user-3"}).ToUser()
		after := time.Now()

		assert.False(t, user.CreatedAt.Before(before))
		assert.False(t, user.CreatedAt.After(after))
		assert.False(t, user.UpdatedAt.Before(before))
		assert.False(t, user.UpdatedAt.After(after))
	})
}
