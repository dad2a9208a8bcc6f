package entities

import (
	"errors"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleEditor):
		return RoleEditor, nil
	default:
		return "", errors.New("invalid role")
	}
}

// Satisfies reports whether the role grants at least the rights of
// required. Admin covers everything; editor covers editor only.
func (r Role) Satisfies(required Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == required
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `gorm:"default:editor" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
