package entity

import (
	"slices"

	"github.com/gofrs/uuid/v5"
)

const (
	RoleAdmin    = "admin"
	RoleSafety   = "safety"
	RoleSupplier = "supplier"
)

func IsKnownRole(name string) bool {
	return slices.Contains([]string{RoleAdmin, RoleSafety, RoleSupplier}, name)
}

type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type User struct {
	ID       uuid.UUID `json:"id"`
	AuthID   uuid.UUID `json:"authId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     *Role     `json:"role"`
}

func (u User) HasRole(names ...string) bool {
	if u.Role == nil {
		return false
	}

	return slices.Contains(names, u.Role.Name)
}

type Company struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Name   string
}
