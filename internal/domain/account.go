package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRoleName is assigned to accounts registered without a role.
const DefaultRoleName = "student"

// ReservedRoleName can only be granted outside the public API.
const ReservedRoleName = "admin"

// Account is a registered user that may authenticate against the API.
type Account struct {
	ID           uuid.UUID `json:"account_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	RoleName     string    `json:"role_name"`
	CreatedAt    time.Time `json:"created_at"`
}
